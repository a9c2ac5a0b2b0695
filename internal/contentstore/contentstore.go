// Package contentstore holds the workout library and blog posts in a small
// sqlite database, seeded on first open.
package contentstore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/strivefit/strivefit/internal/model"
)

type contentstore struct {
	db *sqlx.DB
}

func New(dbName string) (*contentstore, error) {
	isCreating := false
	_, err := os.Stat(dbName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			isCreating = true
		}
	}

	db, err := sqlx.Connect("sqlite3", "file:"+dbName)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &contentstore{db}
	if isCreating {
		if err := store.createTables(); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating tables: %w", err)
		}
		if err := store.seed(); err != nil {
			db.Close()
			return nil, fmt.Errorf("seeding content: %w", err)
		}
	}

	return store, nil
}

func (s *contentstore) Close() error {
	return s.db.Close()
}

func (s *contentstore) createTables() error {
	_, err := s.db.Exec(`create table workout(
		ID              text not null primary key,
		Title           text not null,
		Description     text not null,
		Category        text not null,
		Difficulty      text not null,
		DurationMinutes integer not null default 0,
		VideoURL        text not null default ''
	)`)
	if err != nil {
		return fmt.Errorf("creating workout table: %w", err)
	}

	_, err = s.db.Exec(`create table blog_post(
		ID          text not null primary key,
		Title       text not null,
		Summary     text not null,
		Body        text not null,
		Author      text not null,
		PublishedAt DATETIME not null,
		Premium     boolean not null default false
	)`)
	if err != nil {
		return fmt.Errorf("creating blog_post table: %w", err)
	}

	return nil
}

// Workouts lists the library, optionally filtered by category.
func (s *contentstore) Workouts(category string) ([]model.Workout, error) {
	workouts := []model.Workout{}

	var err error
	if category == "" {
		err = s.db.Select(&workouts, `select * from workout order by Title`)
	} else {
		err = s.db.Select(&workouts, `select * from workout where Category = ? order by Title`, category)
	}
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}

	return workouts, nil
}

// BlogPosts lists post metadata without bodies.
func (s *contentstore) BlogPosts() ([]model.BlogPost, error) {
	posts := []model.BlogPost{}
	err := s.db.Select(&posts, `select ID, Title, Summary, '' as Body, Author, PublishedAt, Premium
		from blog_post order by PublishedAt desc`)
	if err != nil {
		return nil, fmt.Errorf("fetching blog posts: %w", err)
	}
	return posts, nil
}

func (s *contentstore) BlogPost(id string) (*model.BlogPost, error) {
	post := &model.BlogPost{}
	err := s.db.Get(post, `select * from blog_post where ID = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrorPostNotFound
		}
		return nil, fmt.Errorf("fetching blog post: %w", err)
	}
	return post, nil
}

func (s *contentstore) insertWorkout(w *model.Workout) error {
	_, err := s.db.NamedExec(`insert into workout
		(ID, Title, Description, Category, Difficulty, DurationMinutes, VideoURL)
		values(:ID, :Title, :Description, :Category, :Difficulty, :DurationMinutes, :VideoURL)`, w)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}
	return nil
}

func (s *contentstore) insertBlogPost(p *model.BlogPost) error {
	_, err := s.db.NamedExec(`insert into blog_post
		(ID, Title, Summary, Body, Author, PublishedAt, Premium)
		values(:ID, :Title, :Summary, :Body, :Author, :PublishedAt, :Premium)`, p)
	if err != nil {
		return fmt.Errorf("inserting blog post: %w", err)
	}
	return nil
}

func (s *contentstore) seed() error {
	workouts := []model.Workout{
		{Title: "Push-Up Variations", Description: "Master different push-up techniques to target various muscle groups.", Category: "Strength", Difficulty: "Beginner", DurationMinutes: 15},
		{Title: "HIIT Cardio Blast", Description: "A high-intensity interval training workout to boost your cardio fitness.", Category: "Cardio", Difficulty: "Intermediate", DurationMinutes: 20},
		{Title: "Full Body Stretch Routine", Description: "Improve flexibility and reduce muscle tension with this comprehensive routine.", Category: "Flexibility", Difficulty: "Beginner", DurationMinutes: 25},
		{Title: "Dumbbell Strength Circuit", Description: "Build strength with this full-body dumbbell workout.", Category: "Strength", Difficulty: "Intermediate", DurationMinutes: 30},
		{Title: "30-Minute Running Guide", Description: "Structured running workout for beginners and intermediate runners.", Category: "Cardio", Difficulty: "Beginner", DurationMinutes: 30},
		{Title: "Yoga for Athletes", Description: "Yoga poses specifically designed to complement athletic training.", Category: "Flexibility", Difficulty: "Intermediate", DurationMinutes: 40},
	}

	for i := range workouts {
		workouts[i].ID = model.CreateID()
		if err := s.insertWorkout(&workouts[i]); err != nil {
			return err
		}
	}

	posts := []model.BlogPost{
		{
			Title:       "Five Habits of Consistent Lifters",
			Summary:     "Consistency beats intensity. What keeps regulars coming back.",
			Body:        "Showing up on the bad days matters more than crushing the good ones...",
			Author:      "Sam Rivera",
			PublishedAt: time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Protein Timing Is Mostly a Myth",
			Summary:     "Total daily intake dwarfs the anabolic window.",
			Body:        "The post-workout window is wider than the supplement industry says...",
			Author:      "Dana Okafor",
			PublishedAt: time.Date(2024, 2, 19, 9, 0, 0, 0, time.UTC),
		},
		{
			Title:       "The 12-Week Strength Program",
			Summary:     "Our full periodized program, for members.",
			Body:        "Week one starts with a baseline test across the four main lifts...",
			Author:      "Sam Rivera",
			PublishedAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
			Premium:     true,
		},
	}

	for i := range posts {
		posts[i].ID = model.CreateID()
		if err := s.insertBlogPost(&posts[i]); err != nil {
			return err
		}
	}

	return nil
}
