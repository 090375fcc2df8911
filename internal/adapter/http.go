package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/adilzhm/travel-diary/models"
)

// HTTPClientConfig holds the settings of the HTTP/REST adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.BaseURL and configures the
// underlying resty client with the resolved base URL and request timeout.
func NewHTTPServerAdapter(cfg HTTPClientConfig) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) error {
	resp, err := h.request(ctx).
		SetMultipartFormData(map[string]string{
			"email":    request.Email,
			"fullName": request.FullName,
			"bio":      request.Bio,
			"password": request.Password,
		}).
		Post("/register")
	if err != nil {
		return fmt.Errorf("register request failed: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (string, error) {
	var tokenResponse models.TokenResponse

	resp, err := h.request(ctx).
		SetBody(request).
		SetResult(&tokenResponse).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(tokenResponse.Token)
	return tokenResponse.Token, nil
}

func (h *httpServerAdapter) Profile(ctx context.Context) (models.ProfileResponse, error) {
	var profile models.ProfileResponse

	resp, err := h.request(ctx).
		SetResult(&profile).
		Get("/profile")
	if err != nil {
		return models.ProfileResponse{}, fmt.Errorf("profile request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.ProfileResponse{}, err
	}

	return profile, nil
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, post models.DiaryPost) (models.DiaryPost, error) {
	var created models.DiaryPost

	resp, err := h.request(ctx).
		SetMultipartFormData(map[string]string{
			"destination": post.Destination,
			"date":        post.Date.Format(time.RFC3339),
			"description": post.Description,
			"itinerary":   post.Itinerary,
			"visibility":  string(post.Visibility),
		}).
		SetResult(&created).
		Post("/diary-posts")
	if err != nil {
		return models.DiaryPost{}, fmt.Errorf("create post request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.DiaryPost{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) BookTrip(ctx context.Context, trip models.Trip) (models.BookTripResponse, error) {
	var booking models.BookTripResponse

	resp, err := h.request(ctx).
		SetBody(models.BookTripRequest{Trip: trip}).
		SetResult(&booking).
		Post("/book-trip")
	if err != nil {
		return models.BookTripResponse{}, fmt.Errorf("book trip request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return models.BookTripResponse{}, err
	}

	return booking, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User

	resp, err := h.request(ctx).
		SetResult(&users).
		Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpServerAdapter) RecentActivity(ctx context.Context) ([]models.UserActivity, error) {
	var activity []models.UserActivity

	resp, err := h.request(ctx).
		SetResult(&activity).
		Get("/recent-activity")
	if err != nil {
		return nil, fmt.Errorf("recent activity request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return activity, nil
}

func (h *httpServerAdapter) ListAllPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	var posts []models.PostWithAuthor

	resp, err := h.request(ctx).
		SetResult(&posts).
		Get("/users-posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

func (h *httpServerAdapter) AdminDashboard(ctx context.Context) ([]models.UserWithPosts, error) {
	var dashboard []models.UserWithPosts

	resp, err := h.request(ctx).
		SetResult(&dashboard).
		Get("/admin/dashboard")
	if err != nil {
		return nil, fmt.Errorf("dashboard request failed: %w", err)
	}
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (h *httpServerAdapter) AdminDeletePost(ctx context.Context, request models.DeletePostRequest) error {
	resp, err := h.request(ctx).
		SetBody(request).
		Delete("/admin/deletePost")
	if err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) AdminDeleteUser(ctx context.Context, request models.DeleteUserRequest) error {
	resp, err := h.request(ctx).
		SetBody(request).
		Delete("/admin/deleteUser")
	if err != nil {
		return fmt.Errorf("delete user request failed: %w", err)
	}

	return mapHTTPError(resp)
}
