//go:build integration

package test

import (
	"context"
	"io"
	"net/http"
	"strings"

	gymstatsmcp "github.com/2beens/fittrack/internal/gymstats/mcp"
	"github.com/2beens/fittrack/internal/middleware"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type secretTransport struct {
	secret string
}

func (t *secretTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(middleware.HeaderMCPSecret, t.secret)
	return http.DefaultTransport.RoundTrip(req)
}

func (s *IntegrationTestSuite) connect(ctx context.Context) *mcp.ClientSession {
	client := mcp.NewClient(&mcp.Implementation{Name: "integration-client", Version: "1.0.0"}, nil)
	clientSession, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint:   serverEndpoint + "/mcp",
		HTTPClient: &http.Client{Transport: &secretTransport{secret: testMCPSecret}},
	}, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() {
		_ = clientSession.Close()
	})
	return clientSession
}

func (s *IntegrationTestSuite) callTool(ctx context.Context, cs *mcp.ClientSession, name string, args map[string]any) string {
	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	s.Require().NoError(err)
	s.Require().NotEmpty(res.Content)
	text := res.Content[0].(*mcp.TextContent).Text
	s.Require().False(res.IsError, text)
	return text
}

func (s *IntegrationTestSuite) TestHealthAndVersion() {
	resp, err := http.Get(serverEndpoint + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, serverEndpoint+"/version", nil)
	s.Require().NoError(err)
	req.Header.Set(middleware.HeaderMCPSecret, testMCPSecret)
	resp, err = http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal("test-version-info", string(body))
}

func (s *IntegrationTestSuite) TestMCPWithoutSecret() {
	resp, err := http.Post(serverEndpoint+"/mcp", "application/json", strings.NewReader(`{}`))
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestListTools() {
	ctx := context.Background()
	cs := s.connect(ctx)

	res, err := cs.ListTools(ctx, nil)
	s.Require().NoError(err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	s.ElementsMatch([]string{
		gymstatsmcp.ToolGetExerciseGroups,
		gymstatsmcp.ToolGetLogs,
		gymstatsmcp.ToolGetStats,
		gymstatsmcp.ToolGetDailyEssentials,
		gymstatsmcp.ToolGetProfile,
	}, names)
}

func (s *IntegrationTestSuite) TestToolsUseRestoredSession() {
	ctx := context.Background()
	cs := s.connect(ctx)

	groups := s.callTool(ctx, cs, gymstatsmcp.ToolGetExerciseGroups, nil)
	s.Contains(groups, "## Push")
	s.Contains(groups, "| Bench press | flat bench |")
	s.Contains(groups, "| Dips | - |")

	logs := s.callTool(ctx, cs, gymstatsmcp.ToolGetLogs, map[string]any{"date": "2026-10-18"})
	s.Contains(logs, `"exerciseName": "Bench press"`)

	stats := s.callTool(ctx, cs, gymstatsmcp.ToolGetStats, map[string]any{"days": 7, "category": "Push"})
	s.Contains(stats, `"currentStreak": 1`)

	essentials := s.callTool(ctx, cs, gymstatsmcp.ToolGetDailyEssentials, map[string]any{"date": "2026-10-18"})
	s.Contains(essentials, `"waterIntake": 1.5`)
	none := s.callTool(ctx, cs, gymstatsmcp.ToolGetDailyEssentials, map[string]any{"date": "2026-10-17"})
	s.Equal("[]", strings.TrimSpace(none))

	profile := s.callTool(ctx, cs, gymstatsmcp.ToolGetProfile, nil)
	s.Contains(profile, "Run a marathon")

	s.Equal(1.0, testutil.ToFloat64(s.metricsManager.CounterMCPToolCalls.WithLabelValues(gymstatsmcp.ToolGetProfile, "ok")))
}

func (s *IntegrationTestSuite) TestInvalidToolInput() {
	ctx := context.Background()
	cs := s.connect(ctx)

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      gymstatsmcp.ToolGetStats,
		Arguments: map[string]any{"days": 0},
	})
	s.Require().NoError(err)
	s.True(res.IsError)
}

func (s *IntegrationTestSuite) TestRateLimit() {
	client := &http.Client{Transport: &secretTransport{secret: testMCPSecret}}

	limited := false
	for i := 0; i < testRateLimit+5; i++ {
		resp, err := client.Post(serverEndpoint+"/mcp", "application/json", strings.NewReader(`{}`))
		s.Require().NoError(err)
		_ = resp.Body.Close()
		if resp.StatusCode == http.StatusTooManyRequests {
			s.NotEmpty(resp.Header.Get("Retry-After"))
			limited = true
			break
		}
	}
	s.True(limited, "expected a 429 within the per minute budget")
	s.GreaterOrEqual(testutil.ToFloat64(s.metricsManager.CounterRateLimitedRequests), 1.0)
}
