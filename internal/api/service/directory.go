package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskdesk/taskdesk/internal/api/domain"
	"github.com/taskdesk/taskdesk/pkg/slogx"
)

// ErrDirectoryUnavailable reports that the upstream user API could not be
// reached or returned garbage.
var ErrDirectoryUnavailable = errors.New("user directory upstream unavailable")

const (
	// directorySeed pins the upstream's random generation so pages are
	// reproducible between requests.
	directorySeed    = "foobar"
	directoryPerPage = 10

	// The upstream has no total count; the listing assumes a fixed one.
	directoryTotal = 100
)

// DirectoryService serves the user-directory listing backed by the external
// random-user API. It holds no state; every call fetches the requested page
// upstream and filters in process.
type DirectoryService struct {
	Client  *http.Client
	BaseURL string // e.g. https://randomuser.me/api
}

// List fetches one page from the upstream and applies the optional gender
// and search filters. Search matches case-insensitively on first name, last
// name or email.
func (s *DirectoryService) List(ctx context.Context, gender, search string, page int) (domain.DirectoryPage, error) {
	log := slogx.FromContext(ctx)

	if page < 1 {
		page = 1
	}

	users, err := s.fetchPage(ctx, page)
	if err != nil {
		log.Error("directory upstream fetch failed", slog.Any("error", err))
		return domain.DirectoryPage{}, ErrDirectoryUnavailable
	}

	if gender != "" {
		users = filterUsers(users, func(u domain.DirectoryUser) bool {
			return u.Gender == gender
		})
	}
	if search != "" {
		needle := strings.ToLower(search)
		users = filterUsers(users, func(u domain.DirectoryUser) bool {
			return strings.Contains(strings.ToLower(u.Name.First), needle) ||
				strings.Contains(strings.ToLower(u.Name.Last), needle) ||
				strings.Contains(strings.ToLower(u.Email), needle)
		})
	}

	return domain.DirectoryPage{
		Users:    users,
		Page:     page,
		PerPage:  directoryPerPage,
		Total:    directoryTotal,
		LastPage: (directoryTotal + directoryPerPage - 1) / directoryPerPage,
	}, nil
}

func (s *DirectoryService) fetchPage(ctx context.Context, page int) ([]domain.DirectoryUser, error) {
	url := fmt.Sprintf("%s/?seed=%s&results=%d&page=%d", s.BaseURL, directorySeed, directoryPerPage, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var payload struct {
		Results []domain.DirectoryUser `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	return payload.Results, nil
}

func filterUsers(users []domain.DirectoryUser, keep func(domain.DirectoryUser) bool) []domain.DirectoryUser {
	out := make([]domain.DirectoryUser, 0, len(users))
	for _, u := range users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}
