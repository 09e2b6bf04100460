//go:build e2e

package boards_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/boards/pkg/boardsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared helpers for the boards service end-to-end tests.
 */

const (
	testImageName = "bartab-boards-test:latest"
	testPassword  = "password123"
)

// TestMain builds the image once for the whole run and removes it after.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Boards Service Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Boards Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/boards/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	_ = exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName).Run()
}

// relaxedLimits keeps the strict auth limits out of the way of tests that
// register many users from one address.
var relaxedLimits = map[string]string{
	"RATELIMIT_STRICT_REQUESTS":   "1000",
	"RATELIMIT_STRICT_WINDOW_SEC": "60",
	"RATELIMIT_STRICT_BURST":      "1000",
	"RATELIMIT_MODERATE_REQUESTS": "1000",
	"RATELIMIT_MODERATE_BURST":    "1000",
}

// setupBoardsContainer starts the service and returns its base URL. Extra
// env entries are layered over the defaults.
func setupBoardsContainer(t *testing.T, extraEnv map[string]string) string {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"BOARDS_ISSUER": "bartab-boards",
		"ENV":           "test",
		"LOG_LEVEL":     "info",
		"LOG_FORMAT":    "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8080/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8080/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, port.Port())
}

// register creates a fresh user and returns a session for them.
func register(t *testing.T, client *boardsdk.SDKClient, email string) *boardsdk.Session {
	t.Helper()
	sess, err := client.RegisterAndAuthenticate(t.Context(), boardsdk.RegisterRequest{
		Name:     "E2E " + email,
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token())
	return sess
}

func requireStatus(t *testing.T, err error, status int) *boardsdk.APIError {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*boardsdk.APIError)
	require.True(t, ok, "want *APIError, got %T: %v", err, err)
	require.Equal(t, status, apiErr.StatusCode, "body: %v", apiErr)
	return apiErr
}

func assertHealthy(t *testing.T, health *boardsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
}
