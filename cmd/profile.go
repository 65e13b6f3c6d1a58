// ABOUTME: Profile command for provider profile creation and lookup
// ABOUTME: Routes to the worker or tutor endpoint based on the session role

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillserve/marketplace-cli/internal/client"
	"github.com/skillserve/marketplace-cli/internal/session"
)

var (
	profileServiceType   string
	profileSubject       string
	profilePrice         float64
	profileIDDocument    string
	profileQualification string
	profileQualDocument  string
	profileExperience    string
	profileTranscript    string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your provider profile",
	Long: `Show the logged-in worker's or tutor's profile, including its
verification status. Use 'profile create' to submit a new profile.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProfileShow(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create your provider profile",
	Long: `Submit a provider profile for verification. Workers give a service
type and price; tutors give a subject, price, qualifications, and a demo
lesson transcript the backend evaluates.

Examples:
  skillserve profile create --service-type plumber --price 400 --id-document ./id.jpg
  skillserve profile create --subject mathematics --price 800 \
      --qualification "MSc Mathematics" --transcript ./demo.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runProfileCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd)

	profileCreateCmd.Flags().StringVar(&profileServiceType, "service-type", "", "Service offered (workers)")
	profileCreateCmd.Flags().StringVar(&profileSubject, "subject", "", "Subject taught (tutors)")
	profileCreateCmd.Flags().Float64Var(&profilePrice, "price", 0, "Price for the service")
	profileCreateCmd.Flags().StringVar(&profileIDDocument, "id-document", "", "Path to an identity document to upload")
	profileCreateCmd.Flags().StringVar(&profileQualification, "qualification", "", "Qualification summary (tutors)")
	profileCreateCmd.Flags().StringVar(&profileQualDocument, "qualification-document", "", "Path to a qualification document (tutors)")
	profileCreateCmd.Flags().StringVar(&profileExperience, "experience", "", "Teaching experience description (tutors)")
	profileCreateCmd.Flags().StringVar(&profileTranscript, "transcript", "", "Path to a demo lesson transcript file (tutors)")
}

// runProfileShow fetches the caller's profile and returns an exit code.
func runProfileShow(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	id, ok := env.requireIdentity(w)
	if !ok {
		return exitAuth
	}

	switch id.Role {
	case session.RoleWorker:
		profile, err := env.client.WorkerProfile(ctx)
		if err != nil {
			return reportError(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(profile, "", "  ")
			fmt.Fprintln(w, string(data))
			return exitOK
		}
		fmt.Fprintln(w, formatWorkerProfileHuman(profile))
		return exitOK

	case session.RoleTutor:
		profile, err := env.client.TutorProfile(ctx)
		if err != nil {
			return reportError(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(profile, "", "  ")
			fmt.Fprintln(w, string(data))
			return exitOK
		}
		fmt.Fprintln(w, formatTutorProfileHuman(profile))
		return exitOK

	default:
		fmt.Fprintln(w, "Profiles are for workers and tutors. Customers can search and book instead.")
		return exitFailed
	}
}

// runProfileCreate submits a new profile and returns an exit code.
func runProfileCreate(ctx context.Context, w io.Writer) int {
	env, err := newAppEnv(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}

	id, ok := env.requireIdentity(w)
	if !ok {
		return exitAuth
	}

	switch id.Role {
	case session.RoleWorker:
		profile, err := env.client.CreateWorkerProfile(ctx, client.WorkerProfileInput{
			ServiceType:    profileServiceType,
			Price:          profilePrice,
			IDDocumentPath: profileIDDocument,
		})
		if err != nil {
			return reportError(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(profile, "", "  ")
			fmt.Fprintln(w, string(data))
			return exitOK
		}
		fmt.Fprintf(w, "Worker profile created for %s. Verification: %s.\n",
			profile.ServiceType, profile.VerificationStatus)
		return exitOK

	case session.RoleTutor:
		transcript, err := readTranscript(profileTranscript)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return exitError
		}
		profile, err := env.client.CreateTutorProfile(ctx, client.TutorProfileInput{
			Subject:               profileSubject,
			Price:                 profilePrice,
			QualificationText:     profileQualification,
			ExperienceDescription: profileExperience,
			DemoTranscript:        transcript,
			IDDocumentPath:        profileIDDocument,
			QualificationDocPath:  profileQualDocument,
		})
		if err != nil {
			return reportError(w, err)
		}
		if IsJSONOutput() {
			data, _ := json.MarshalIndent(profile, "", "  ")
			fmt.Fprintln(w, string(data))
			return exitOK
		}
		fmt.Fprintln(w, formatTutorProfileHuman(profile))
		return exitOK

	default:
		fmt.Fprintln(w, "Only workers and tutors can create profiles.")
		return exitFailed
	}
}

// readTranscript loads the demo transcript from a file path.
func readTranscript(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("--transcript is required for tutor profiles")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read transcript: %w", err)
	}
	return string(data), nil
}

func formatWorkerProfileHuman(p *client.WorkerProfile) string {
	out := fmt.Sprintf("Service:      %s\nVerification: %s\nRating:       %.1f",
		p.ServiceType, p.VerificationStatus, p.Rating)
	if p.Price > 0 {
		out += fmt.Sprintf("\nPrice:        %.0f", p.Price)
	}
	return out
}

func formatTutorProfileHuman(p *client.TutorProfile) string {
	out := fmt.Sprintf("Subject:       %s\nVerification:  %s\nQualification: %.1f\nSkill:         %.1f",
		p.Subject, p.VerificationStatus, p.QualificationScore, p.SkillScore)
	if p.Price > 0 {
		out += fmt.Sprintf("\nPrice:         %.0f", p.Price)
	}
	if p.ProfileSummary != "" {
		out += "\n\n" + p.ProfileSummary
	}
	return out
}
