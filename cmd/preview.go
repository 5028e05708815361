package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/apptremind/internal/model"
	"github.com/manav03panchal/apptremind/internal/validate"
)

// Preview command flags.
var (
	previewFlagName     string
	previewFlagTime     string
	previewFlagCategory string
)

// previewCmd renders a single reminder without starting the menu.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the reminder for one appointment",
	Long: `Render one appointment with the current template and print the reminder.

Examples:
  apptremind preview --name Bob --time "3 PM"
  apptremind preview --name Ana --time "9 AM" --category consultation
  apptremind preview --template "name at time" --name Ana --time "9 AM"`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	if err := validate.Name(previewFlagName); err != nil {
		return err
	}
	if err := validate.Time(previewFlagTime); err != nil {
		return err
	}

	a := model.NewAppointment(previewFlagTime, previewFlagName)
	if previewFlagCategory != "" {
		var err error
		a, err = model.NewDetailedAppointmentFromInput(previewFlagTime, previewFlagName, previewFlagCategory)
		if err != nil {
			return err
		}
	}

	if err := appCtx.Manager.Add(a); err != nil {
		return err
	}
	return appCtx.Manager.WriteReminders(appCtx.CLIFormatter())
}

func init() {
	previewCmd.Flags().StringVar(&previewFlagName, "name", "", "Who the appointment is for (required)")
	previewCmd.Flags().StringVar(&previewFlagTime, "time", "", "When the appointment is (required)")
	previewCmd.Flags().StringVar(&previewFlagCategory, "category", "", "consultation, followup or interview")
}
