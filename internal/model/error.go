package model

import "errors"

var ErrorEmailInUse = errors.New("email is already in use")
var ErrorInvalidEmail = errors.New("email is not a valid email")
var ErrorInvalidFirstName = errors.New("first name is invalid")
var ErrorInvalidLastName = errors.New("last name is invalid")
var ErrorWeakPassword = errors.New("password is not strong enough")
var ErrorInvalidCredentials = errors.New("password or email address does not exist or is incorrect")
var ErrorInvalidToken = errors.New("invalid token provided")
var ErrorUserNotFound = errors.New("user not found")
var ErrorPostNotFound = errors.New("post not found")
var ErrorSessionIDCollision = errors.New("could not allocate an unused session id")
var ErrorFieldsRequired = errors.New("all fields are required")
var ErrorPasswordMismatch = errors.New("passwords do not match")
var ErrorUnparseableAnswer = errors.New("unparseable analyzer answer")
var ErrorPremiumRequired = errors.New("premium pass required")
