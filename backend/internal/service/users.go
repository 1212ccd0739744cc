package service

import (
	"net/http"

	"github.com/itchan-dev/hackorsnooze/shared/domain"
	"github.com/itchan-dev/hackorsnooze/shared/errors"
)

type UserService interface {
	Get(username domain.Username) (domain.UserDetails, error)
	AddFavorite(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error)
	RemoveFavorite(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error)
}

type UserStorage interface {
	UserDetails(username domain.Username) (domain.UserDetails, error)
	AddFavorite(username domain.Username, id domain.StoryId) error
	RemoveFavorite(username domain.Username, id domain.StoryId) error
}

type Users struct {
	storage UserStorage
}

func NewUsers(storage UserStorage) *Users {
	return &Users{storage: storage}
}

func (u *Users) Get(username domain.Username) (domain.UserDetails, error) {
	return u.storage.UserDetails(username)
}

// AddFavorite favorites a story for username and returns the updated user.
// Users may only change their own favorites.
func (u *Users) AddFavorite(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error) {
	if err := sameUser(requester, username); err != nil {
		return domain.UserDetails{}, err
	}
	if err := u.storage.AddFavorite(username, id); err != nil {
		return domain.UserDetails{}, err
	}
	return u.storage.UserDetails(username)
}

func (u *Users) RemoveFavorite(requester, username domain.Username, id domain.StoryId) (domain.UserDetails, error) {
	if err := sameUser(requester, username); err != nil {
		return domain.UserDetails{}, err
	}
	if err := u.storage.RemoveFavorite(username, id); err != nil {
		return domain.UserDetails{}, err
	}
	return u.storage.UserDetails(username)
}

func sameUser(requester, username domain.Username) error {
	if requester != username {
		return &errors.ErrorWithStatusCode{Message: "You can only change your own favorites", StatusCode: http.StatusForbidden}
	}
	return nil
}
