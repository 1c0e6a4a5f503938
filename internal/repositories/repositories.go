// Package repositories implements PostgreSQL persistence for accounts,
// links and clicks on top of the shared pgx pool.
package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers compare
// with errors.Is; handlers map it to 404.
var ErrNotFound = errors.New("not found")

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks
//go:generate mockgen -source=url_repository.go -destination=mocks/url_repository_mock.go -package=mocks
//go:generate mockgen -source=click_repository.go -destination=mocks/click_repository_mock.go -package=mocks
