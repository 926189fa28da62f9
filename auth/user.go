package auth

import "errors"

var ErrLogin = errors.New("wrong username or password")

type DBUser interface {
	Id() int
	Name() string // can be email address
}

type UserDB interface {
	Delete(u DBUser) error
	GetUser(id int) (DBUser, error)
	InsertUser(name string) (DBUser, error)
	LoginUser(name, password string) (DBUser, error) // returns ErrLogin on wrong name or password
	SetPassword(u DBUser, password string) error
}
