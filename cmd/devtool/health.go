package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check a running instance's health endpoints"
}

func (c *HealthCheckCommand) Run(args []string) error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	base := fmt.Sprintf("http://localhost:%s", port)

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := &http.Client{Timeout: 5 * time.Second}

	start := time.Now()
	if err := checkEndpoint(client, base+"/healthz"); err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	duration := time.Since(start)

	if err := checkEndpoint(client, base+"/readyz"); err != nil {
		PrintError("Readiness check failed: %v", err)
		return err
	}

	if duration > 1*time.Second {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}

	return nil
}

func checkEndpoint(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned %d: %s", url, resp.StatusCode, string(body))
	}

	PrintInfo("%s: %s", url, string(body))
	return nil
}
