package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/srosales/sigboard/internal/models"
)

// UsersClient covers the /users resource endpoints.
type UsersClient struct {
	c *Client
}

// Users returns a resource client for /users.
func (c *Client) Users() *UsersClient {
	return &UsersClient{c: c}
}

// List fetches the whole collection.
func (u *UsersClient) List(ctx context.Context) ([]models.UserDB, error) {
	var users []models.UserDB
	if err := u.c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get fetches a single user by id.
func (u *UsersClient) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	var user models.UserDB
	if err := u.c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create posts a new user and returns the created row with its assigned id.
func (u *UsersClient) Create(ctx context.Context, username, email string) (*models.UserDB, error) {
	body := map[string]string{"username": username, "email": email}
	var user models.UserDB
	if err := u.c.do(ctx, http.MethodPost, "/users", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces username and email in place.
func (u *UsersClient) Update(ctx context.Context, id int64, username, email string) (*models.UserDB, error) {
	body := map[string]string{"username": username, "email": email}
	var user models.UserDB
	if err := u.c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user. Success carries no body.
func (u *UsersClient) Delete(ctx context.Context, id int64) error {
	return u.c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}
