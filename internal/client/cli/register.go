package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/radian/internal/client/attachments"
	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/client/validation"
	"github.com/dmitrijs2005/radian/internal/common"
)

// getSimpleText, getPassword and inspectAttachment are indirections used to
// facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var inspectAttachment = attachments.Inspect

// maxRegisterRounds bounds how many times the failing fields are asked again
// after a rejected submit.
const maxRegisterRounds = 3

var errRegistrationAborted = errors.New("registration aborted after repeated validation failures")

var fieldOptions = map[models.Field][]string{
	models.FieldPhoneCode:           models.PhoneCodes,
	models.FieldAltPhoneCode:        models.PhoneCodes,
	models.FieldGender:              models.Genders,
	models.FieldDepartment:          models.Departments,
	models.FieldLocationPreferences: models.LocationPreferences,
	models.FieldPlan:                models.Plans,
	models.FieldPaymentCycle:        models.PaymentCycles,
}

var optionalFields = map[models.Field]bool{
	models.FieldMiddleInitial: true,
	models.FieldAltEmail:      true,
	models.FieldAltPhone:      true,
	models.FieldGender:        true,
	models.FieldFile:          true,
}

// Register walks the form field by field, runs the blur check after every
// answer and submits. A rejected submit prints the report and asks only the
// failing fields again.
func (a *App) Register(ctx context.Context) error {
	form := models.NewForm()
	fields := models.FieldOrder

	for round := 0; round < maxRegisterRounds; round++ {
		for _, f := range fields {
			if err := a.askField(ctx, form, f); err != nil {
				return err
			}
		}

		u, err := a.registration.Submit(ctx, form)
		if err == nil {
			fmt.Fprintf(a.out, "Registered %s (%s)\n", u.FullName(), u.ID)
			if err := a.reload(ctx); err != nil {
				return err
			}
			return a.List(ctx)
		}

		var verr *validation.Error
		if !errors.As(err, &verr) {
			return err
		}
		a.printReport(verr.Report)
		fields = retryFields(verr.Report)
	}
	return errRegistrationAborted
}

func (a *App) askField(ctx context.Context, form *models.Form, f models.Field) error {
	switch f {
	case models.FieldPassword, models.FieldConfirmPassword:
		pw, err := getPassword(f.Label(), a.out)
		if err != nil {
			return err
		}
		err = form.Set(f, string(pw))
		common.WipeByteArray(pw)
		if err != nil {
			return err
		}

	case models.FieldFile:
		path, err := getSimpleText(a.reader, promptFor(f, form), a.out)
		if err != nil {
			return err
		}
		if err := a.setAttachment(ctx, form, path); err != nil {
			return err
		}

	default:
		value, err := getSimpleText(a.reader, promptFor(f, form), a.out)
		if err != nil {
			return err
		}
		if value == "" && defaultValue(f, form) != "" {
			break
		}
		if err := form.Set(f, value); err != nil {
			return err
		}
	}

	for _, r := range a.registration.ValidateField(ctx, f, form) {
		if !r.OK() {
			fmt.Fprintf(a.out, "  ! %s\n", r.Message)
		}
	}
	return nil
}

func (a *App) setAttachment(ctx context.Context, form *models.Form, path string) error {
	if path == "" {
		return form.Set(models.FieldFile, "")
	}
	att, err := inspectAttachment(path)
	if err != nil {
		a.log.Warn(ctx, "cannot read attachment", "path", path, "error", err)
		fmt.Fprintf(a.out, "  ! cannot read %s\n", path)
		form.File = nil
		return nil
	}
	form.File = att
	return nil
}

func (a *App) printReport(r validation.Report) {
	fmt.Fprintf(a.out, "Please correct %s:\n", r.First.Label())
	for _, m := range r.Messages() {
		fmt.Fprintf(a.out, "  %s: %s\n", m.Field.Label(), m.Message)
	}
}

// retryFields lists the failing fields together with the fields coupled to
// them, in form order.
func retryFields(r validation.Report) []models.Field {
	want := map[models.Field]bool{}
	for f := range r.Errors {
		want[f] = true
		for _, d := range validation.Dependents(f) {
			want[d] = true
		}
	}
	out := make([]models.Field, 0, len(want))
	for _, f := range models.FieldOrder {
		if want[f] {
			out = append(out, f)
		}
	}
	return out
}

func promptFor(f models.Field, form *models.Form) string {
	var b strings.Builder
	b.WriteString(f.Label())
	switch f {
	case models.FieldLocationPreferences:
		b.WriteString(" (comma separated: " + strings.Join(fieldOptions[f], ", ") + ")")
	case models.FieldDOB:
		b.WriteString(" (YYYY-MM-DD)")
	case models.FieldFile:
		b.WriteString(" (path to a PDF)")
	case models.FieldTerms:
		b.WriteString(" accepted? (y/n)")
	default:
		if opts := fieldOptions[f]; len(opts) > 0 {
			b.WriteString(" (" + strings.Join(opts, "/") + ")")
		}
	}
	if optionalFields[f] {
		b.WriteString(", optional")
	}
	if def := defaultValue(f, form); def != "" {
		b.WriteString(" [" + def + "]")
	}
	return b.String()
}

// defaultValue is the value kept when the answer is left empty.
func defaultValue(f models.Field, form *models.Form) string {
	switch f {
	case models.FieldPhoneCode:
		return form.PhoneCode
	case models.FieldAltPhoneCode:
		return form.AltPhoneCode
	case models.FieldPaymentCycle:
		return form.PaymentCycle
	}
	return ""
}
