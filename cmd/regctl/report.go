package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gorm.io/gorm"

	"github.com/localnerve/eventreg/internal/services"
)

func runSubmissions(ctx context.Context, db *gorm.DB, w io.Writer, format string) error {
	list, err := services.ListAllSubmissions(ctx, db)
	if err != nil {
		return codeError(2, "listing submissions: %s", err)
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tFORM\tID\tNAME\tEMAIL")
	for _, s := range list.Submissions {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			s.CreatedAt.UTC().Format(time.RFC3339), s.FormType(), s.ID, s.UserName, s.UserEmail)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if list.Partial() {
		fmt.Fprintf(w, "\nWARN: incomplete, could not read %s\n", strings.Join(list.Failed, ", "))
	}
	return nil
}

func runStatus(ctx context.Context, db *gorm.DB, w io.Writer, userID string) error {
	status := services.GetCompletionStatus(ctx, db, userID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range []struct {
		form services.FormType
		done bool
	}{
		{services.ParentFormType, status.ParentForm},
		{services.AttendeeFormType, status.AttendeeForm},
		{services.WaiverFormType, status.WaiverForm},
	} {
		fmt.Fprintf(tw, "%s\t%s\n", row.form, mark(row.done))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(status.Failed) > 0 {
		fmt.Fprintf(w, "\nWARN: could not read %s\n", strings.Join(status.Failed, ", "))
	}
	if status.Complete() {
		fmt.Fprintln(w, "\nAll forms submitted")
	}
	return nil
}

func mark(done bool) string {
	if done {
		return "submitted"
	}
	return "missing"
}
