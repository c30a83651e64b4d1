package homeassistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"inovelli-led-manager/internal/ports"
	"net/http"
	"strings"
	"sync"
	"time"
)

var ErrNotConfigured = errors.New("Home Assistant not configured")

// Entity domains an Inovelli switch shows up under.
var supportedDomains = []string{"light.", "fan.", "switch."}

type Client struct {
	url        string
	token      string
	httpClient *http.Client
	mu         sync.RWMutex

	cacheStates []map[string]interface{}
	cacheTime   time.Time
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Configure(url, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.url = strings.TrimSuffix(url, "/")
	c.token = token
	c.cacheStates = nil
	c.cacheTime = time.Time{}
}

func (c *Client) IsConfigured() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.url != "" && c.token != ""
}

// GetAllEntities lists the light, fan and switch entities, for picking the
// entity_id of a zwave_js preset.
func (c *Client) GetAllEntities(ctx context.Context) ([]ports.HomeAssistantEntity, error) {
	states, err := c.GetRawStates(ctx)
	if err != nil {
		return nil, err
	}

	entities := []ports.HomeAssistantEntity{}
	for _, s := range states {
		entityID, _ := s["entity_id"].(string)
		if !c.isSupported(entityID) {
			continue
		}

		attributes, _ := s["attributes"].(map[string]interface{})
		name, _ := attributes["friendly_name"].(string)
		if name == "" {
			name = entityID
		}

		entities = append(entities, ports.HomeAssistantEntity{
			EntityID:     entityID,
			FriendlyName: name,
		})
	}

	return entities, nil
}

func (c *Client) GetRawStates(ctx context.Context) ([]map[string]interface{}, error) {
	c.mu.RLock()
	if c.cacheStates != nil && time.Since(c.cacheTime) < 2*time.Second {
		res := c.cacheStates
		c.mu.RUnlock()
		return res, nil
	}
	url := c.url
	token := c.token
	c.mu.RUnlock()

	if url == "" || token == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url+"/api/states", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HA API error: %d", resp.StatusCode)
	}

	var states []map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&states); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cacheStates = states
	c.cacheTime = time.Now()
	c.mu.Unlock()

	return states, nil
}

// CallService posts data to /api/services/<domain>/<service>.
func (c *Client) CallService(ctx context.Context, domain, service string, data any) error {
	c.mu.RLock()
	urlBase := c.url
	token := c.token
	c.mu.RUnlock()

	if urlBase == "" || token == "" {
		return ErrNotConfigured
	}
	if domain == "" || service == "" {
		return fmt.Errorf("invalid service %q.%q", domain, service)
	}

	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding service data: %w", err)
	}

	url := fmt.Sprintf("%s/api/services/%s/%s", urlBase, domain, service)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("HA API error: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) isSupported(entityID string) bool {
	for _, domain := range supportedDomains {
		if strings.HasPrefix(entityID, domain) {
			return true
		}
	}
	return false
}
