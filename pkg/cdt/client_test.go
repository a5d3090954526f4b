package cdt

import (
	"context"
	"errors"
	"testing"

	cdtapi "github.com/alibabacloud-go/cdt-20210813/v2/client"
	util "github.com/alibabacloud-go/tea-utils/v2/service"
	"github.com/alibabacloud-go/tea/tea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	resp    *cdtapi.ListCdtInternetTrafficResponse
	err     error
	runtime *util.RuntimeOptions
}

func (s *stubAPI) ListCdtInternetTrafficWithOptions(runtime *util.RuntimeOptions) (*cdtapi.ListCdtInternetTrafficResponse, error) {
	s.runtime = runtime
	return s.resp, s.err
}

func respWithDetails(details ...*cdtapi.ListCdtInternetTrafficResponseBodyTrafficDetails) *cdtapi.ListCdtInternetTrafficResponse {
	return &cdtapi.ListCdtInternetTrafficResponse{
		StatusCode: tea.Int32(200),
		Body: &cdtapi.ListCdtInternetTrafficResponseBody{
			TrafficDetails: details,
		},
	}
}

func detail(bytes int64) *cdtapi.ListCdtInternetTrafficResponseBodyTrafficDetails {
	return &cdtapi.ListCdtInternetTrafficResponseBodyTrafficDetails{Traffic: tea.Int64(bytes)}
}

func TestTotalTrafficGB_SumsDetails(t *testing.T) {
	c := &Client{api: &stubAPI{resp: respWithDetails(
		detail(10 * 1024 * 1024 * 1024),
		detail(10 * 1024 * 1024 * 1024),
	)}}

	gb, err := c.TotalTrafficGB(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20.0, gb)
}

func TestTotalTrafficGB_SkipsAbsentByteCounts(t *testing.T) {
	// A nil Traffic pointer must be excluded from the sum, while an explicit
	// zero must participate. Both yield the same total here, but only the
	// former may be skipped.
	absent := &cdtapi.ListCdtInternetTrafficResponseBodyTrafficDetails{}
	c := &Client{api: &stubAPI{resp: respWithDetails(
		detail(500_000_000),
		absent,
		detail(300_000_000),
		detail(0),
	)}}

	gb, err := c.TotalTrafficGB(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 800_000_000.0/(1<<30), gb, 1e-12)
}

func TestTotalTrafficGB_NonOKStatus(t *testing.T) {
	c := &Client{api: &stubAPI{resp: &cdtapi.ListCdtInternetTrafficResponse{
		StatusCode: tea.Int32(403),
	}}}

	gb, err := c.TotalTrafficGB(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.Equal(t, 0.0, gb)
}

func TestTotalTrafficGB_TransportError(t *testing.T) {
	c := &Client{api: &stubAPI{err: errors.New("dial tcp: i/o timeout")}}

	gb, err := c.TotalTrafficGB(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0.0, gb)
}

func TestTotalTrafficGB_EmptyBody(t *testing.T) {
	c := &Client{api: &stubAPI{resp: &cdtapi.ListCdtInternetTrafficResponse{
		StatusCode: tea.Int32(200),
	}}}

	gb, err := c.TotalTrafficGB(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, gb)
}

func TestTotalTrafficGB_BoundedRuntime(t *testing.T) {
	stub := &stubAPI{resp: respWithDetails()}
	c := &Client{api: stub}

	_, err := c.TotalTrafficGB(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stub.runtime)
	assert.Equal(t, connectTimeoutMs, tea.IntValue(stub.runtime.ConnectTimeout))
	assert.Equal(t, readTimeoutMs, tea.IntValue(stub.runtime.ReadTimeout))
	assert.False(t, tea.BoolValue(stub.runtime.Autoretry))
}
