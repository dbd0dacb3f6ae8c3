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
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

var (
	ErrMissingFlag = errors.New("missing flag")
	ErrNoReports   = errors.New("no ginkgo reports found")
)

type options struct {
	report      string
	workflowURL string
	environment string
	webhookURL  string
	timeout     time.Duration
}

func (o *options) addFlags(f *pflag.FlagSet) {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "unknown"
	}

	f.StringVar(&o.report, "report", "", "Ginkgo JSON report from the functional suites.")
	f.StringVar(&o.workflowURL, "workflow-url", "", "Link to the CI run that produced the report.")
	f.StringVar(&o.environment, "environment", environment, "Cloud the suites ran against.")
	f.StringVar(&o.webhookURL, "webhook-url", os.Getenv("SLACK_WEBHOOK_URL"), "Slack incoming webhook.")
	f.DurationVar(&o.timeout, "timeout", 30*time.Second, "Time allowed to deliver the notification.")
}

func (o *options) validate() error {
	if o.report == "" {
		return fmt.Errorf("%w: --report", ErrMissingFlag)
	}

	if o.webhookURL == "" {
		return fmt.Errorf("%w: --webhook-url or SLACK_WEBHOOK_URL", ErrMissingFlag)
	}

	return nil
}

func run(ctx context.Context, o *options) error {
	if err := o.validate(); err != nil {
		return err
	}

	reports, err := readReports(o.report)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		return ErrNoReports
	}

	message := summarize(reports).message(o.environment, o.workflowURL)

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	return post(ctx, o.webhookURL, message)
}

func main() {
	o := &options{}
	o.addFlags(pflag.CommandLine)

	pflag.Parse()

	if err := run(context.Background(), o); err != nil {
		fmt.Fprintln(os.Stderr, "slack-notify:", err)
		os.Exit(1)
	}

	fmt.Println("slack notification sent")
}
