package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the portal HTTP API and keeps the bearer token from a
// successful login.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
}

type UserRow struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Disabled bool   `json:"disabled"`
}

type LogRow struct {
	ID        uint      `json:"id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	Timestamp time.Time `json:"timestamp"`
}

func (c *Client) Login(email, pw string) error {
	body, _ := json.Marshal(map[string]string{"email": email, "password": pw})
	resp, err := c.http.Post(c.BaseURL+"/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed (%d)", resp.StatusCode)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	c.Token = out.AccessToken
	return nil
}

func (c *Client) get(path string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s failed (%d)", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) Users() ([]UserRow, error) {
	var users []UserRow
	err := c.get("/api/admin/users", &users)
	return users, err
}

func (c *Client) Logs(offset, limit int) ([]LogRow, error) {
	var logs []LogRow
	err := c.get(fmt.Sprintf("/api/admin/logs?offset=%d&limit=%d", offset, limit), &logs)
	return logs, err
}
