package main

import (
	"context"
	"errors"
	"html/template"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/nrednav/cuid2"

	"github.com/strivefit/strivefit/internal/boot"
	"github.com/strivefit/strivefit/internal/contentstore"
	"github.com/strivefit/strivefit/internal/datastore"
	"github.com/strivefit/strivefit/internal/handlers"
	"github.com/strivefit/strivefit/internal/service/account"
	"github.com/strivefit/strivefit/internal/service/analyzer"
	"github.com/strivefit/strivefit/internal/service/auth"
	"github.com/strivefit/strivefit/internal/service/premium"
)

type Template struct {
	templates *template.Template
	watcher   *fsnotify.Watcher
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func (t *Template) Watch() {
	var err error

	t.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		log.Fatalf("watcher: %+v", err)
	}

	go func() {
		for {
			select {
			case event, ok := <-t.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) {
					log.Infof("modified file: %s", event.Name)
					t.templates = template.Must(template.ParseGlob("ui/views/*.html"))
				}
			case err, ok := <-t.watcher.Errors:
				if !ok {
					return
				}
				log.Errorf("watcher: %+v", err)
			}
		}
	}()

	err = t.watcher.Add("./ui/views")
	if err != nil {
		log.Fatalf("watcher: %+v", err)
	}
}

func (t *Template) Close() {
	if t.watcher != nil {
		t.watcher.Close()
	}
}

func NewTemplate() (*Template, error) {
	t := &Template{
		templates: template.Must(template.ParseGlob("ui/views/*.html")),
	}
	return t, nil
}

func main() {
	config, err := boot.Load()
	if err != nil {
		log.Fatalf("boot: %+v", err)
	}

	store, err := datastore.New(config.DatabaseFile())
	if err != nil {
		log.Fatalf("datastore: %+v", err)
	}

	authService := auth.New(store)

	accountService, err := account.New(config.UsersFile())
	if err != nil {
		log.Fatalf("account service: %+v", err)
	}

	content, err := contentstore.New(config.ContentFile())
	if err != nil {
		log.Fatalf("contentstore: %+v", err)
	}
	defer content.Close()

	premiumService, err := premium.New(config.PremiumKeyFile(), config.PremiumValidity)
	if err != nil {
		log.Fatalf("premium service: %+v", err)
	}

	analyzerService := analyzer.New(analyzer.Config{
		URL:     config.AnalyzerURL,
		APIKey:  config.AnalyzerAPIKey,
		Model:   config.AnalyzerModel,
		Timeout: config.AnalyzerTimeout,
	})

	server := echo.New()
	server.Use(middleware.BodyLimit("1M"))
	server.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return cuid2.Generate()
		},
	}))
	server.Use(echoprometheus.NewMiddleware("strivefit"))
	server.Use(middleware.Recover())

	server.Logger.SetLevel(log.INFO)

	server.Static("/static", "ui/static")

	t, _ := NewTemplate()
	defer t.Close()
	if config.IsDevelopment() {
		t.Watch()
	}
	server.Renderer = t

	server.GET("/", func(c echo.Context) error {
		return c.Render(http.StatusOK, "app.html", nil)
	})

	// token-variant auth API
	server.POST("/v1/auth/register", handlers.Register(authService))
	server.POST("/v1/auth/login", handlers.Login(authService))
	server.POST("/v1/auth/logout", handlers.Logout(authService))
	server.GET("/v1/auth/me", handlers.Me(authService))

	// cookie-variant form flow
	server.POST("/signup", handlers.Signup(accountService, config.IsProduction()))
	server.POST("/login", handlers.SessionLogin(accountService, config.IsProduction()))
	server.POST("/logout", handlers.SessionLogout())
	server.GET("/dashboard", handlers.Dashboard())

	// content and tools
	server.GET("/v1/workouts", handlers.Workouts(content))
	server.GET("/v1/blog", handlers.BlogIndex(content))
	server.GET("/v1/blog/:id", handlers.BlogShow(content, premiumService))
	server.POST("/v1/calculator", handlers.Calculator())
	server.POST("/v1/tracker/food", handlers.AnalyzeFood(authService, analyzerService))
	server.POST("/v1/tracker/activity", handlers.AnalyzeActivity(authService, analyzerService))
	server.POST("/v1/premium/subscribe", handlers.PremiumSubscribe(authService, premiumService))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(config.MetricsAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	go func() {
		if err := server.Start(config.ListenAddr); err != nil && err != http.ErrServerClosed {
			server.Logger.Fatal("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		server.Logger.Fatal(err)
	}
}
