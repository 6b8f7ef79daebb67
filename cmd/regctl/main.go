// main.go
//
// Event registration forms and admin submissions service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of eventreg.
// eventreg is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// eventreg is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with eventreg.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/localnerve/eventreg/internal/config"
	"github.com/localnerve/eventreg/internal/database"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and prints any error once to stderr
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintln(stderr, "Error:", err)

	var ee *exitErr
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "regctl",
		Short: "Administer event registrations",
		Long:  "regctl migrates the registration database and reports submissions and completion status from the admin pool.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile == "" {
				return nil
			}
			if err := godotenv.Load(envFile); err != nil {
				return codeError(3, "loading %s: %s", envFile, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Load environment variables from this .env file")

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the registration tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB) error {
				if err := database.AutoMigrate(db); err != nil {
					return codeError(2, "migrate: %s", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
				return nil
			})
		},
	}

	var format string
	submissionsCmd := &cobra.Command{
		Use:   "submissions",
		Short: "List every submission, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return codeError(3, "invalid --format %q: use table or json", format)
			}
			return withDB(func(db *gorm.DB) error {
				return runSubmissions(cmd.Context(), db, cmd.OutOrStdout(), format)
			})
		},
	}
	submissionsCmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")

	statusCmd := &cobra.Command{
		Use:   "status <user-id>",
		Short: "Show which forms a participant has submitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *gorm.DB) error {
				return runStatus(cmd.Context(), db, cmd.OutOrStdout(), args[0])
			})
		},
	}

	root.AddCommand(migrateCmd, submissionsCmd, statusCmd)
	return root
}

// withDB opens the admin pool for the duration of fn
func withDB(fn func(db *gorm.DB) error) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return codeError(3, "configuration: %s", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		return codeError(2, "%s", err)
	}
	defer database.Close(db)
	return fn(db)
}
