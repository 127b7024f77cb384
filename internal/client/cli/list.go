package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/radian/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	users, err := a.registration.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No registered users")
		return nil
	}
	writeUsers(a.out, users)
	return nil
}

func writeUsers(w io.Writer, users []models.User) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tUSERNAME\tEMAIL\tDEPARTMENT\tPLAN")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.FullName(), u.Username, u.Email, u.Department, u.Plan)
	}
	tw.Flush()
}

// Show prints the card of one user. The password hash is never shown.
func (a *App) Show(ctx context.Context, id string) error {
	u, err := a.registration.Get(ctx, id)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", label, value)
		}
	}
	row("ID", u.ID)
	row("Name", u.FullName())
	row("Username", u.Username)
	row("Email", u.Email)
	row("Alternate Email", u.AltEmail)
	row("Phone", joinPhone(u.PhoneCode, u.Phone))
	row("Alternate Phone", joinPhone(u.AltPhoneCode, u.AltPhone))
	row("Date of Birth", u.DOB)
	row("Gender", u.Gender)
	row("Address", u.Address)
	row("Department", u.Department)
	row("Locations", strings.Join(u.LocationPreferences, ", "))
	row("Plan", u.Plan)
	row("Payment Cycle", u.PaymentCycle)
	if u.File != nil {
		row("Attachment", fmt.Sprintf("%s (%d bytes)", u.File.Name, u.File.Size))
		loc, err := a.registration.AttachmentLocation(ctx, u)
		if err != nil {
			a.log.Warn(ctx, "cannot locate attachment", "id", u.ID, "error", err)
		}
		row("Stored at", loc)
	}
	return tw.Flush()
}

func joinPhone(code, number string) string {
	if number == "" {
		return ""
	}
	return strings.TrimSpace(code + " " + number)
}
