/*-
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command check_cohesity is a Nagios plugin running one health check
// against a cluster per invocation.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mfreeman451/cohesity-checks/pkg/checker/cohesity"
	"github.com/mfreeman451/cohesity-checks/pkg/config"
	"github.com/mfreeman451/cohesity-checks/pkg/iris"
	"github.com/mfreeman451/cohesity-checks/pkg/nagios"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// optionalString records whether a flag was given at all, so an explicit
// empty threshold can disable a level.
type optionalString struct {
	v *string
}

func (o *optionalString) Set(s string) error {
	o.v = &s

	return nil
}

func (o *optionalString) String() string {
	if o.v == nil {
		return ""
	}

	return *o.v
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var (
		app = kingpin.New("check_cohesity", "Nagios checks for Cohesity clusters")

		vip      = app.Flag("cluster-vip", "Cluster VIP or FQDN").Short('H').Required().String()
		hostName = app.Flag("host-name", "Section of the auth file holding the credentials (defaults to the VIP)").Short('n').String()
		authFile = app.Flag("auth-file", "INI file with username, password and domain per host").Short('f').Required().ExistingFile()
		days     = app.Flag("days", "Lookback in days for protection-runs").Short('d').Default("1").Int()
		verbose  = app.Flag("verbose", "Increase log verbosity, repeatable").Short('v').Counter()
		timeout  = app.Flag("timeout", "Abort the check after this long").Short('t').Default("30s").Duration()
		insecure = app.Flag("insecure", "Skip TLS certificate verification").Bool()

		warning  optionalString
		critical optionalString
	)

	app.Flag("warning", "Warning range, empty to disable").Short('w').SetValue(&warning)
	app.Flag("critical", "Critical range, empty to disable").Short('c').SetValue(&critical)

	for i := range cohesity.Catalog {
		app.Command(cohesity.Catalog[i].Name, cohesity.Catalog[i].Description)
	}

	app.Writer(stdout)
	app.ErrorWriter(os.Stderr)

	cmd, err := app.Parse(args)
	if err != nil {
		return unknown(stdout, "", fmt.Errorf("failed to parse command line: %w", err))
	}

	setVerbosity(*verbose)

	def, _ := cohesity.Lookup(cmd)

	if *hostName == "" {
		*hostName = *vip
	}

	creds, err := config.LoadCredentials(*authFile, *hostName)
	if err != nil {
		return unknown(stdout, def.Title, err)
	}

	client, err := iris.NewHTTPClient(*vip, *creds,
		iris.WithTimeout(*timeout),
		iris.WithInsecureSkipVerify(*insecure),
	)
	if err != nil {
		return unknown(stdout, def.Title, err)
	}

	check, err := cohesity.New(cmd, client, cohesity.Options{
		Warning:    warning.v,
		Critical:   critical.v,
		Days:       *days,
		ClusterVIP: *vip,
	})
	if err != nil {
		return unknown(stdout, def.Title, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	return nagios.Main(ctx, check, stdout)
}

func setVerbosity(v int) {
	log.SetOutput(os.Stderr)

	switch {
	case v <= 0:
		log.SetLevel(log.WarnLevel)
	case v == 1:
		log.SetLevel(log.InfoLevel)
	case v == 2:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.TraceLevel)
	}
}

// unknown prints an UNKNOWN plugin line for err.
func unknown(w io.Writer, name string, err error) int {
	res := &nagios.Result{Name: name, State: nagios.StateUnknown, Summary: err.Error(), Err: err}

	if _, werr := fmt.Fprintln(w, res.String()); werr != nil {
		log.Errorf("Failed to write check output: %v", werr)
	}

	return res.State.ExitCode()
}
