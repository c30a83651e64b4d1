package homeassistant

import (
	"context"
	"encoding/json"
	"errors"
	"inovelli-led-manager/internal/domain/model"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_CallService(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotBody map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.Configure(srv.URL+"/", "secret")
	require.True(t, c.IsConfigured())

	err := c.CallService(context.Background(), "zwave_js", "set_config_parameter",
		model.CommandData{EntityID: "light.x", Parameter: 13, Value: 170})
	require.NoError(t, err)

	assert.Equal(t, "/api/services/zwave_js/set_config_parameter", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "light.x", gotBody["entity_id"])
	assert.Equal(t, 13.0, gotBody["parameter"])
	assert.Equal(t, 170.0, gotBody["value"])
	_, hasSize := gotBody["size"]
	assert.False(t, hasSize)
}

func TestClient_CallServiceErrors(t *testing.T) {
	c := NewClient()
	err := c.CallService(context.Background(), "zwave", "set_config_parameter", nil)
	assert.True(t, errors.Is(err, ErrNotConfigured))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()
	c.Configure(srv.URL, "secret")
	err = c.CallService(context.Background(), "zwave", "set_config_parameter", map[string]int{"node_id": 5})
	assert.ErrorContains(t, err, "400")
}

func TestClient_GetAllEntities(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/states", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"entity_id": "light.hallway", "attributes": {"friendly_name": "Hallway"}},
			{"entity_id": "fan.bedroom", "attributes": {}},
			{"entity_id": "sensor.temp", "attributes": {"friendly_name": "Temp"}}
		]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.Configure(srv.URL, "secret")
	entities, err := c.GetAllEntities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.Equal(t, "Hallway", entities[0].FriendlyName)
	assert.Equal(t, "fan.bedroom", entities[1].FriendlyName)
}

type MockHAPort struct {
	mock.Mock
}

func (m *MockHAPort) CallService(ctx context.Context, domain, service string, data any) error {
	args := m.Called(ctx, domain, service, data)
	return args.Error(0)
}

func (m *MockHAPort) Configure(url, token string) {
	m.Called(url, token)
}

func (m *MockHAPort) IsConfigured() bool {
	return m.Called().Bool(0)
}

func TestSink_SendCallsService(t *testing.T) {
	ha := new(MockHAPort)
	done := make(chan struct{})
	node := 5
	data := model.CommandData{NodeID: &node, Parameter: 21, Value: 3, Size: 1}

	ha.On("IsConfigured").Return(true)
	ha.On("CallService", mock.Anything, "zwave", "set_config_parameter", data).
		Return(errors.New("boom")).
		Run(func(mock.Arguments) { close(done) })

	s := NewSink(ha, nil)
	s.Send(context.Background(), "hallway", model.OutboundCommand{
		Domain: model.DomainZWave, Service: model.ServiceSetConfigParameter, Data: data,
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("service was not called")
	}
	ha.AssertExpectations(t)
}

func TestSink_DropsWhenNotConfigured(t *testing.T) {
	ha := new(MockHAPort)
	ha.On("IsConfigured").Return(false)

	NewSink(ha, nil).Send(context.Background(), "hallway", model.OutboundCommand{})
	ha.AssertNotCalled(t, "CallService", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
