package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"stylist/internal/config"

	"log/slog"
)

// Статусы run'а Maestro. Run считается завершённым, когда статус
// попадает в терминальное множество.
const (
	RunStatusCompleted      = "completed"
	RunStatusFailed         = "failed"
	RunStatusInProgress     = "in_progress"
	RunStatusRequiresAction = "requires_action"
)

var terminalRunStatuses = map[string]struct{}{
	RunStatusCompleted:      {},
	RunStatusFailed:         {},
	RunStatusRequiresAction: {},
}

// ErrPollTimeout возвращается, когда run не завершился за отведённое время.
var ErrPollTimeout = errors.New("maestro poll timeout")

// RunRequirement требование к run'у: именованное извлекаемое свойство.
type RunRequirement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsMandatory bool   `json:"is_mandatory,omitempty"`
}

// RunRequest параметры создания run'а.
type RunRequest struct {
	Input        []Message        `json:"input"`
	Models       []string         `json:"models,omitempty"`
	Requirements []RunRequirement `json:"requirements,omitempty"`
	Budget       string           `json:"budget,omitempty"`
	Include      []string         `json:"include,omitempty"`
}

// Run состояние run'а Maestro.
type Run struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

// Terminal сообщает, что run больше не изменит статус.
func (r Run) Terminal() bool {
	_, ok := terminalRunStatuses[r.Status]
	return ok
}

// MaestroClient клиент асинхронного run-API Maestro: создание run'а и
// ограниченный по времени опрос статуса с фиксированным интервалом.
type MaestroClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	sleep      func(ctx context.Context, d time.Duration) error
	now        func() time.Time
	logger     *slog.Logger
}

func NewMaestroClient(cfg config.AI21Config, httpClient *http.Client, logger *slog.Logger) *MaestroClient {
	return &MaestroClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		sleep:      sleepContext,
		now:        time.Now,
		logger:     logger,
	}
}

// CreateRun создаёт новый run.
func (c *MaestroClient) CreateRun(ctx context.Context, req RunRequest) (Run, error) {
	var run Run
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/maestro/runs", req, &run); err != nil {
		return Run{}, fmt.Errorf("create run: %w", err)
	}
	return run, nil
}

// Run возвращает текущее состояние run'а.
func (c *MaestroClient) Run(ctx context.Context, runID string) (Run, error) {
	var run Run
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/maestro/runs/"+runID, nil, &run); err != nil {
		return Run{}, fmt.Errorf("retrieve run %s: %w", runID, err)
	}
	return run, nil
}

// PollRun опрашивает run с интервалом interval, пока статус не станет
// терминальным или не истечёт timeout.
func (c *MaestroClient) PollRun(ctx context.Context, runID string, interval, timeout time.Duration) (Run, error) {
	run, err := c.Run(ctx, runID)
	if err != nil {
		return Run{}, err
	}

	start := c.now()
	for !run.Terminal() {
		if c.now().Sub(start) > timeout {
			return run, fmt.Errorf("%w: run %s still %s after %s", ErrPollTimeout, runID, run.Status, timeout)
		}
		if err := c.sleep(ctx, interval); err != nil {
			return run, err
		}
		if run, err = c.Run(ctx, runID); err != nil {
			return Run{}, err
		}
	}
	return run, nil
}

// CreateAndPoll создаёт run и дожидается его завершения.
func (c *MaestroClient) CreateAndPoll(ctx context.Context, req RunRequest, interval, timeout time.Duration) (Run, error) {
	run, err := c.CreateRun(ctx, req)
	if err != nil {
		return Run{}, err
	}
	return c.PollRun(ctx, run.ID, interval, timeout)
}

func (c *MaestroClient) doJSON(ctx context.Context, method, url string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, respBody)
	}
	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
