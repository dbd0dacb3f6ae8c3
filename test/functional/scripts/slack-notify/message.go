/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/


package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/onsi/ginkgo/v2/types"
)

var ErrWebhook = errors.New("webhook rejected notification")

const (
	// maxFailures caps the failure sections, Slack rejects large payloads.
	maxFailures = 5

	maxMessage = 500
	maxOutput  = 300

	// uncategorized groups specs declared outside any container.
	uncategorized = "Other"
)

type slackMessage struct {
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type   string      `json:"type"`
	Text   *slackText  `json:"text,omitempty"`
	Fields []slackText `json:"fields,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func markdown(format string, a ...any) *slackText {
	return &slackText{Type: "mrkdwn", Text: fmt.Sprintf(format, a...)}
}

func section(format string, a ...any) slackBlock {
	return slackBlock{Type: "section", Text: markdown(format, a...)}
}

func divider() slackBlock {
	return slackBlock{Type: "divider"}
}

// counts tallies spec outcomes.
type counts struct {
	passed  int
	failed  int
	skipped int
}

func (c *counts) add(state types.SpecState) {
	switch {
	case state.Is(types.SpecStatePassed):
		c.passed++
	case state.Is(types.SpecStateFailureStates):
		c.failed++
	case state.Is(types.SpecStateSkipped | types.SpecStatePending):
		c.skipped++
	}
}

func (c counts) total() int {
	return c.passed + c.failed + c.skipped
}

// area is a top level Describe, e.g. "Shares" or "Share types".
type area struct {
	name string
	counts
}

// summary is the aggregate of every suite in a report file.
type summary struct {
	suites    []string
	succeeded bool
	start     time.Time
	duration  time.Duration
	counts
	areas    []*area
	failures []types.SpecReport
}

func readReports(path string) ([]types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var reports []types.Report

	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return reports, nil
}

func summarize(reports []types.Report) *summary {
	s := &summary{
		succeeded: true,
	}

	index := map[string]*area{}

	for _, report := range reports {
		s.suites = append(s.suites, report.SuiteDescription)
		s.succeeded = s.succeeded && report.SuiteSucceeded
		s.duration += report.RunTime

		if s.start.IsZero() || report.StartTime.Before(s.start) {
			s.start = report.StartTime
		}

		for _, spec := range report.SpecReports {
			// Setup and teardown nodes carry their own report entries.
			if spec.LeafNodeType != types.NodeTypeIt {
				if spec.State.Is(types.SpecStateFailureStates) {
					s.failures = append(s.failures, spec)
				}

				continue
			}

			name := uncategorized
			if len(spec.ContainerHierarchyTexts) > 0 {
				name = spec.ContainerHierarchyTexts[0]
			}

			a, ok := index[name]
			if !ok {
				a = &area{name: name}
				index[name] = a
				s.areas = append(s.areas, a)
			}

			s.add(spec.State)
			a.add(spec.State)

			if spec.State.Is(types.SpecStateFailureStates) {
				s.failures = append(s.failures, spec)
			}
		}
	}

	return s
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	// Back up to a rune boundary so the payload stays valid UTF-8.
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}

	return s[:limit] + "..."
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return fmt.Sprintf("%.1fm", d.Minutes())
}

func specName(spec types.SpecReport) string {
	parts := append([]string{}, spec.ContainerHierarchyTexts...)

	if spec.LeafNodeText != "" {
		parts = append(parts, spec.LeafNodeText)
	} else {
		parts = append(parts, spec.LeafNodeType.String())
	}

	return strings.Join(parts, " > ")
}

func failureText(spec types.SpecReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "*%s* (%s)\n", specName(spec), spec.State)

	if spec.Failure.Message != "" {
		location := spec.Failure.Location

		fmt.Fprintf(&sb, "`%s:%d`\n", filepath.Base(location.FileName), location.LineNumber)
		fmt.Fprintf(&sb, "```\n%s\n```", truncate(spec.Failure.Message, maxMessage))
	}

	// Cleanup failures are logged to the Ginkgo writer rather than failing the spec.
	if spec.CapturedGinkgoWriterOutput != "" {
		fmt.Fprintf(&sb, "\n```\n%s\n```", truncate(spec.CapturedGinkgoWriterOutput, maxOutput))
	}

	return sb.String()
}

func (s *summary) message(environment, workflowURL string) slackMessage {
	status, result := ":white_check_mark:", "PASSED"
	if !s.succeeded {
		status, result = ":x:", "FAILED"
	}

	blocks := []slackBlock{
		{
			Type: "header",
			Text: &slackText{
				Type: "plain_text",
				Text: fmt.Sprintf("Manila Functional Tests (%s)", strings.ToUpper(environment)),
			},
		},
		section("%s *%s* - %s", status, strings.Join(s.suites, ", "), result),
		{
			Type: "section",
			Fields: []slackText{
				*markdown("*Total:*\n%d", s.total()),
				*markdown("*Duration:*\n%s", formatDuration(s.duration)),
				*markdown("*Passed:*\n%d", s.passed),
				*markdown("*Failed:*\n%d", s.failed),
				*markdown("*Skipped:*\n%d", s.skipped),
				*markdown("*Started:*\n%s", s.start.UTC().Format(time.DateTime)),
			},
		},
	}

	if len(s.areas) > 0 {
		lines := make([]string, 0, len(s.areas))

		for _, a := range s.areas {
			lines = append(lines, fmt.Sprintf("%s: %d/%d passed, %d skipped", a.name, a.passed, a.total(), a.skipped))
		}

		blocks = append(blocks, section("%s", strings.Join(lines, "\n")))
	}

	if len(s.failures) > 0 {
		blocks = append(blocks, divider(), section("*Failures:*"))

		for i, spec := range s.failures {
			if i == maxFailures {
				blocks = append(blocks, section("_...and %d more_", len(s.failures)-maxFailures))

				break
			}

			blocks = append(blocks, section("%s", failureText(spec)))
		}
	}

	if workflowURL != "" {
		blocks = append(blocks, divider(), section("<%s|View the full run>", workflowURL))
	}

	return slackMessage{
		Blocks: blocks,
	}
}

func post(ctx context.Context, webhookURL string, message slackMessage) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return fmt.Errorf("%w: status %d: %s", ErrWebhook, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
