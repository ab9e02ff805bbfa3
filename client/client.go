// Package client is a Go client for the café ordering API, together with the
// page-level view logic the browser frontend implements: catalog filtering,
// category derivation, cart totals, and the admin availability panel.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-cafe-ordering/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token holds the signed token captured from the last successful login.
	Token string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register submits a new account. The server replies with plain text; any
// non-200 status is surfaced as an error carrying that text.
func (c *Client) Register(username, userid, email, password string) error {
	payload := map[string]string{
		"username": username,
		"userid":   userid,
		"email":    email,
		"password": password,
	}
	_, err := c.doText(http.MethodPost, "/register", payload)
	return err
}

// Login verifies credentials and captures the token header on success.
func (c *Client) Login(userid, password string) error {
	payload := map[string]string{"userid": userid, "password": password}

	resp, err := c.do(http.MethodPost, "/login", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", strings.TrimSpace(string(body)))
	}
	c.Token = resp.Header.Get("token")
	return nil
}

// Menu fetches every menu item, including unavailable ones.
func (c *Client) Menu() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.doJSON(http.MethodGet, "/api/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetAvailability pushes a new availability flag for an item and returns the
// document the server stored.
func (c *Client) SetAvailability(itemID int64, available bool) (models.MenuItem, error) {
	var updated models.MenuItem
	path := fmt.Sprintf("/api/menu/%d", itemID)
	payload := map[string]bool{"available": available}
	if err := c.doJSON(http.MethodPut, path, payload, &updated); err != nil {
		return models.MenuItem{}, err
	}
	return updated, nil
}

// AddToCart appends one line to the shared cart.
func (c *Client) AddToCart(item models.CartItem) (models.CartItem, error) {
	var created models.CartItem
	if err := c.doJSON(http.MethodPost, "/cart", item, &created); err != nil {
		return models.CartItem{}, err
	}
	return created, nil
}

// Cart fetches every line currently in the shared cart.
func (c *Client) Cart() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.doJSON(http.MethodGet, "/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromCart deletes a line by its id field. Removing an absent id is not
// an error.
func (c *Client) RemoveFromCart(id string) error {
	var response struct {
		Message string `json:"message"`
	}
	return c.doJSON(http.MethodDelete, "/cart/"+id, nil, &response)
}

// PlaceOrder submits the cart lines and returns the created order.
func (c *Client) PlaceOrder(userid string, cartItems []models.CartItem) (models.Order, error) {
	payload := struct {
		Userid    string            `json:"userid"`
		CartItems []models.CartItem `json:"cartItems"`
	}{Userid: userid, CartItems: cartItems}

	var order models.Order
	if err := c.doJSON(http.MethodPost, "/order", payload, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// Orders fetches the order history, newest order number first.
func (c *Client) Orders() ([]models.Order, error) {
	var orders []models.Order
	if err := c.doJSON(http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) do(method, path string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("token", c.Token)
	}
	return c.HTTPClient.Do(req)
}

func (c *Client) doJSON(method, path string, payload, out interface{}) error {
	resp, err := c.do(method, path, payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", strings.TrimSpace(string(body)))
	}
	return json.Unmarshal(body, out)
}

func (c *Client) doText(method, path string, payload interface{}) (string, error) {
	resp, err := c.do(method, path, payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(body))
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s", text)
	}
	return text, nil
}
