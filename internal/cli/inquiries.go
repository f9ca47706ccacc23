package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campus-suite/campusctl/internal/authz"
	"github.com/campus-suite/campusctl/internal/common"
	"github.com/campus-suite/campusctl/internal/storage/inquiries"
)

// Inquiries is the admin review screen for locally stored admission
// applications and information requests.
func (a *App) Inquiries(ctx context.Context) error {
	return a.open(ctx, authz.ScreenInquiries, a.reviewInquiries)
}

func (a *App) reviewInquiries(ctx context.Context) error {
	kindAnswer, err := a.promptText("Which inquiries? (admission/info)", "admission")
	if err != nil {
		return err
	}
	kind := inquiries.KindAdmission
	if kindAnswer == "info" {
		kind = inquiries.KindInformation
	}

	list, err := a.inquiries.List(ctx, kind)
	if err != nil {
		renderError(a.out, "Could not load inquiries: "+err.Error())
		return err
	}

	renderTitle(a.out, fmt.Sprintf("Inquiries - %s", kind))
	rows := make([][]string, 0, len(list))
	for _, inq := range list {
		rows = append(rows, []string{
			inq.ID, inq.Status, inq.CreatedAt.Format("2006-01-02 15:04"), inquirySummary(inq.Payload),
		})
	}
	renderTable(a.out, []string{"ID", "Status", "Received", "From"}, rows)

	action, err := a.promptText("Action (show/status/delete/back)", "back")
	if err != nil {
		return err
	}
	switch action {
	case "show":
		return a.showInquiry(ctx, list)
	case "status":
		return a.updateInquiryStatus(ctx)
	case "delete":
		return a.deleteInquiry(ctx)
	default:
		return nil
	}
}

// inquirySummary pulls the applicant's name and email out of the stored form.
func inquirySummary(payload []byte) string {
	var m map[string]any
	if err := json.Unmarshal(payload, &m); err != nil {
		return "(unreadable)"
	}
	name, _ := m["nombre"].(string)
	email, _ := m["email"].(string)
	switch {
	case name != "" && email != "":
		return name + " <" + email + ">"
	case name != "":
		return name
	case email != "":
		return email
	default:
		return "(anonymous)"
	}
}

func (a *App) showInquiry(ctx context.Context, list []inquiries.Inquiry) error {
	id, err := getSimpleText(a.reader, "Inquiry id", a.out)
	if err != nil || id == "" {
		return err
	}
	for _, inq := range list {
		if inq.ID == id {
			var pretty map[string]any
			if err := json.Unmarshal(inq.Payload, &pretty); err != nil {
				renderError(a.out, "Stored form is unreadable.")
				return nil
			}
			out, _ := json.MarshalIndent(pretty, "", "  ")
			fmt.Fprintln(a.out, string(out))
			return nil
		}
	}
	renderError(a.out, "No inquiry with that id.")
	return nil
}

func (a *App) updateInquiryStatus(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Inquiry id", a.out)
	if err != nil || id == "" {
		return err
	}
	status, err := a.promptText(
		fmt.Sprintf("New status (%s/%s/%s/%s)",
			inquiries.StatusPending, inquiries.StatusContacted,
			inquiries.StatusAccepted, inquiries.StatusRejected),
		inquiries.StatusContacted)
	if err != nil {
		return err
	}

	if err := a.inquiries.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			renderError(a.out, "No inquiry with that id.")
			return nil
		}
		renderError(a.out, "Could not update the inquiry: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Inquiry updated.")
	return nil
}

func (a *App) deleteInquiry(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Inquiry id", a.out)
	if err != nil || id == "" {
		return err
	}
	if !a.confirm("Delete inquiry " + id + "?") {
		return nil
	}

	if err := a.inquiries.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			renderError(a.out, "No inquiry with that id.")
			return nil
		}
		renderError(a.out, "Could not delete the inquiry: "+err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Inquiry deleted.")
	return nil
}
