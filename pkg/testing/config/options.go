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

package config

import (
	"flag"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command line flags to the configuration keys they override.
//
//nolint:gochecknoglobals
var flagKeys = map[string]string{
	"manila-api-version":                KeyAPIVersion,
	"manila-share-network":              KeyShareNetwork,
	"manila-share-type":                 KeyShareType,
	"manila-enable-protocols":           KeyEnableProtocols,
	"manila-build-interval":             KeyBuildInterval,
	"manila-build-timeout":              KeyBuildTimeout,
	"manila-suppress-errors-in-cleanup": KeySuppressErrorsInCleanup,
	"manila-region":                     KeyRegion,
	"manila-exec-dir":                   EnvExecDir,
}

// Options defines flags that take precedence over the environment, handy
// when running a single suite by hand.
type Options struct {
	APIVersion              string
	ShareNetwork            string
	ShareType               string
	EnableProtocols         string
	BuildInterval           string
	BuildTimeout            string
	SuppressErrorsInCleanup bool
	Region                  string
	ExecDir                 string
}

// AddFlags adds the options flags to the given flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.APIVersion, "manila-api-version", "", "Manila API version, 2.latest selects the newest supported.")
	f.StringVar(&o.ShareNetwork, "manila-share-network", "", "Share network used when a test doesn't provide one.")
	f.StringVar(&o.ShareType, "manila-share-type", "", "Share type used when a test doesn't provide one.")
	f.StringVar(&o.EnableProtocols, "manila-enable-protocols", "", "Comma separated share protocols to test, the first is the default.")
	f.StringVar(&o.BuildInterval, "manila-build-interval", "", "Time between status checks, bare integers are seconds.")
	f.StringVar(&o.BuildTimeout, "manila-build-timeout", "", "How long to wait for a status change, bare integers are seconds.")
	f.BoolVar(&o.SuppressErrorsInCleanup, "manila-suppress-errors-in-cleanup", true, "Never fail a test because cleanup failed.")
	f.StringVar(&o.Region, "manila-region", "", "Region to select the manila endpoint from.")
	f.StringVar(&o.ExecDir, "manila-exec-dir", "", "Directory containing the manila CLI.")
}

// bindFlags makes any flags that were explicitly set override other sources.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	return nil
}

// goFlag exposes a pflag through the standard library flag interface,
// setting goes through the owning set so the flag is marked as changed.
type goFlag struct {
	flags *pflag.FlagSet
	flag  *pflag.Flag
}

func (g *goFlag) String() string {
	return g.flag.Value.String()
}

func (g *goFlag) Set(value string) error {
	return g.flags.Set(g.flag.Name, value)
}

func (g *goFlag) IsBoolFlag() bool {
	return g.flag.Value.Type() == "bool"
}

// RegisterGoFlags makes the flags settable through a standard library flag
// set, e.g. the one go test parses for Ginkgo suites.
func RegisterGoFlags(flags *pflag.FlagSet, goflags *flag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		goflags.Var(&goFlag{flags: flags, flag: f}, f.Name, f.Usage)
	})
}
