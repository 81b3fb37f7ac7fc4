package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jobdesk/internal/api"
	"jobdesk/internal/models"
)

// Profile prints the logged-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s> (%s)\n", u.Name, u.Email, u.Role)
	if u.Company != "" {
		fmt.Fprintf(a.out, "Company: %s\n", u.Company)
	}
	if u.Location != "" {
		fmt.Fprintf(a.out, "Location: %s\n", u.Location)
	}
	if u.Phone != "" {
		fmt.Fprintf(a.out, "Phone: %s\n", u.Phone)
	}
	if len(u.Skills) > 0 {
		fmt.Fprintf(a.out, "Skills: %s\n", strings.Join(u.Skills, ", "))
	}
	if u.Experience != "" {
		fmt.Fprintf(a.out, "Experience: %s\n", u.Experience)
	}
	if u.Bio != "" {
		fmt.Fprintf(a.out, "Bio: %s\n", u.Bio)
	}
	if u.Resume != "" {
		fmt.Fprintf(a.out, "Resume: %s\n", u.Resume)
	}
	return nil
}

// EditProfile prompts field by field (empty answers keep current values),
// sends the changed fields to the server, and merges them into the session
// on success.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	var patch models.UserPatch

	prompt := func(label, current string, dst **string) error {
		value, err := GetTextWithDefault(a.reader, label, current, a.out)
		if err != nil {
			return err
		}
		if value != current {
			*dst = &value
		}
		return nil
	}

	if err := prompt("Name", u.Name, &patch.Name); err != nil {
		return err
	}
	if err := prompt("Phone", u.Phone, &patch.Phone); err != nil {
		return err
	}
	if err := prompt("Location", u.Location, &patch.Location); err != nil {
		return err
	}
	if err := prompt("Bio", u.Bio, &patch.Bio); err != nil {
		return err
	}
	if u.IsEmployer() {
		if err := prompt("Company", u.Company, &patch.Company); err != nil {
			return err
		}
	} else {
		skills, err := GetTextWithDefault(a.reader, "Skills (comma-separated)", strings.Join(u.Skills, ", "), a.out)
		if err != nil {
			return err
		}
		if parsed := splitSkills(skills); !equalStrings(parsed, u.Skills) {
			patch.Skills = &parsed
		}
		if err := prompt("Experience", u.Experience, &patch.Experience); err != nil {
			return err
		}
	}

	if patch == (models.UserPatch{}) {
		fmt.Fprintln(a.out, "Nothing to update.")
		return nil
	}

	if _, err := a.client.UpdateProfile(ctx, patch); err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Failed to update profile"))
		return err
	}

	if err := a.session.UpdateUser(patch); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Profile updated successfully!")
	return nil
}

// UploadResume sends a local file to the resume-upload endpoint and records
// the returned reference on the session user.
func (a *App) UploadResume(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: resume <path>")
		return nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Cannot open %s: %v\n", args[0], err)
		return err
	}
	defer f.Close()

	ref, err := a.client.UploadResume(ctx, filepath.Base(args[0]), f)
	if err != nil {
		fmt.Fprintln(a.out, apiMessage(err, "Failed to upload resume"))
		return err
	}

	if err := a.session.UpdateUser(models.UserPatch{Resume: &ref}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Resume uploaded successfully!")
	return nil
}

// apiMessage extracts the server's displayable message from err, falling
// back to the given default.
func apiMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func splitSkills(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
