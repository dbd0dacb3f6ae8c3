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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/onsi/ginkgo/v2/types"
	"github.com/stretchr/testify/require"
)

func itSpec(container, leaf string, state types.SpecState) types.SpecReport {
	return types.SpecReport{
		ContainerHierarchyTexts: []string{container},
		LeafNodeText:            leaf,
		LeafNodeType:            types.NodeTypeIt,
		State:                   state,
	}
}

func failed(container, leaf, message string) types.SpecReport {
	s := itSpec(container, leaf, types.SpecStateFailed)
	s.Failure = types.Failure{
		Message: message,
		Location: types.CodeLocation{
			FileName:   "/src/test/functional/suites/shares_test.go",
			LineNumber: 42,
		},
	}

	return s
}

func testReport(succeeded bool, specs ...types.SpecReport) types.Report {
	return types.Report{
		SuiteDescription: "Manila Functional Suite",
		SuiteSucceeded:   succeeded,
		StartTime:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		RunTime:          90 * time.Second,
		SpecReports:      specs,
	}
}

func writeReport(t *testing.T, reports ...types.Report) string {
	t.Helper()

	data, err := json.Marshal(reports)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func blockTexts(message slackMessage) string {
	var texts []string

	for _, block := range message.Blocks {
		if block.Text != nil {
			texts = append(texts, block.Text.Text)
		}

		for _, field := range block.Fields {
			texts = append(texts, field.Text)
		}
	}

	return strings.Join(texts, "\n")
}

// TestSummarize checks specs are tallied per top level container.
func TestSummarize(t *testing.T) {
	t.Parallel()

	s := summarize([]types.Report{
		testReport(false,
			itSpec("Shares", "is visible to the CLI", types.SpecStatePassed),
			failed("Shares", "is removed", "expected share to be gone"),
			itSpec("Share types", "is listed", types.SpecStateSkipped),
			itSpec("Share types", "rejects a duplicate", types.SpecStatePending),
			types.SpecReport{
				LeafNodeType: types.NodeTypeAfterSuite,
				State:        types.SpecStatePassed,
			},
		),
	})

	require.False(t, s.succeeded)
	require.Equal(t, 4, s.total())
	require.Equal(t, 1, s.passed)
	require.Equal(t, 1, s.failed)
	require.Equal(t, 2, s.skipped)
	require.Len(t, s.areas, 2)
	require.Equal(t, "Shares", s.areas[0].name)
	require.Equal(t, 2, s.areas[0].total())
	require.Equal(t, "Share types", s.areas[1].name)
	require.Equal(t, 2, s.areas[1].skipped)
	require.Len(t, s.failures, 1)
}

// TestSummarizeSuiteFailure checks a failed setup node is reported without
// being counted as a spec.
func TestSummarizeSuiteFailure(t *testing.T) {
	t.Parallel()

	setup := types.SpecReport{
		LeafNodeType: types.NodeTypeBeforeSuite,
		State:        types.SpecStateFailed,
		Failure: types.Failure{
			Message: "no cloud configuration",
		},
	}

	s := summarize([]types.Report{testReport(false, setup)})

	require.Zero(t, s.total())
	require.Empty(t, s.areas)
	require.Len(t, s.failures, 1)
	require.Contains(t, failureText(s.failures[0]), "BeforeSuite")
}

// TestMessage checks the rendered blocks.
func TestMessage(t *testing.T) {
	t.Parallel()

	specs := []types.SpecReport{
		itSpec("Shares", "is visible to the CLI", types.SpecStatePassed),
	}

	for range 7 {
		specs = append(specs, failed("Shares", "is removed", strings.Repeat("x", 1000)))
	}

	message := summarize([]types.Report{testReport(false, specs...)}).message("staging", "https://ci.example.com/run/1")
	text := blockTexts(message)

	require.Equal(t, "header", message.Blocks[0].Type)
	require.Equal(t, "Manila Functional Tests (STAGING)", message.Blocks[0].Text.Text)
	require.Contains(t, text, ":x: *Manila Functional Suite* - FAILED")
	require.Contains(t, text, "*Failed:*\n7")
	require.Contains(t, text, "*Duration:*\n1.5m")
	require.Contains(t, text, "*Started:*\n2026-01-02 03:04:05")
	require.Contains(t, text, "Shares: 1/8 passed, 0 skipped")
	require.Contains(t, text, "`shares_test.go:42`")
	require.Contains(t, text, "_...and 2 more_")
	require.Contains(t, text, "<https://ci.example.com/run/1|View the full run>")
	require.NotContains(t, text, strings.Repeat("x", maxMessage+1))
}

// TestMessagePassed checks a clean run has no failure section.
func TestMessagePassed(t *testing.T) {
	t.Parallel()

	message := summarize([]types.Report{
		testReport(true, itSpec("Security services", "can be shown by the CLI", types.SpecStatePassed)),
	}).message("dev", "")

	text := blockTexts(message)

	require.Contains(t, text, ":white_check_mark:")
	require.Contains(t, text, "PASSED")
	require.NotContains(t, text, "Failures")
	require.NotContains(t, text, "View the full run")
}

// TestTruncate checks long text is cut without splitting a multi-byte rune.
func TestTruncate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abc...", truncate("abcdef", 3))

	// Each "é" is two bytes, a cut at byte 3 lands mid rune.
	truncated := truncate("ééé", 3)
	require.Equal(t, "é...", truncated)
	require.True(t, utf8.ValidString(truncated))

	message := strings.Repeat("✗", maxMessage)
	require.True(t, utf8.ValidString(truncate(message, maxMessage)))
}

// TestFormatDuration checks unit selection.
func TestFormatDuration(t *testing.T) {
	t.Parallel()

	require.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	require.Equal(t, "12.5s", formatDuration(12500*time.Millisecond))
	require.Equal(t, "2.0m", formatDuration(2*time.Minute))
}

// TestRun reads a report file and posts it to the webhook.
func TestRun(t *testing.T) {
	t.Parallel()

	var received slackMessage

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		if err := json.Unmarshal(body, &received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	o := &options{
		report:      writeReport(t, testReport(true, itSpec("Shares", "is visible to the CLI", types.SpecStatePassed))),
		environment: "dev",
		webhookURL:  server.URL,
		timeout:     10 * time.Second,
	}

	require.NoError(t, run(t.Context(), o))
	require.NotEmpty(t, received.Blocks)
	require.Contains(t, blockTexts(received), "Shares: 1/1 passed")
}

// TestRunWebhookRejected checks a non-200 response is an error.
func TestRunWebhookRejected(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	o := &options{
		report:     writeReport(t, testReport(true)),
		webhookURL: server.URL,
		timeout:    10 * time.Second,
	}

	err := run(t.Context(), o)
	require.ErrorIs(t, err, ErrWebhook)
	require.Contains(t, err.Error(), "invalid_payload")
}

// TestRunValidation checks missing inputs are reported before any work.
func TestRunValidation(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, run(t.Context(), &options{webhookURL: "http://localhost"}), ErrMissingFlag)
	require.ErrorIs(t, run(t.Context(), &options{report: "report.json"}), ErrMissingFlag)

	o := &options{
		report:     writeReport(t),
		webhookURL: "http://localhost",
		timeout:    time.Second,
	}

	require.ErrorIs(t, run(t.Context(), o), ErrNoReports)
}
