package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scholarportal/internal/domain/models"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View or change site settings",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current site settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		s, err := client.GetSettings(cmd.Context())
		if err != nil {
			return err
		}
		printSettings(s)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change site settings; unset flags keep their stored value",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		u := &models.SiteSettingsUpdate{}
		str := func(name string) *string {
			if !flags.Changed(name) {
				return nil
			}
			v, _ := flags.GetString(name)
			return &v
		}
		u.SiteTitleEn = str("title-en")
		u.SiteTitleAr = str("title-ar")
		u.ContactEmail = str("contact-email")
		u.FooterTextEn = str("footer-en")
		u.FooterTextAr = str("footer-ar")
		if flags.Changed("featured") {
			ids, _ := flags.GetStringSlice("featured")
			u.FeaturedResourceIDs = make([]*string, len(ids))
			for i := range ids {
				id := strings.TrimSpace(ids[i])
				u.FeaturedResourceIDs[i] = &id
			}
		}

		s, err := client.UpdateSettings(cmd.Context(), u)
		if err != nil {
			return err
		}
		printSettings(s)
		return nil
	},
}

func printSettings(s *models.SiteSettings) {
	fmt.Printf("Title (en):    %s\n", s.SiteTitle.En)
	fmt.Printf("Title (ar):    %s\n", s.SiteTitle.Ar)
	fmt.Printf("Contact email: %s\n", orDash(s.ContactEmail))
	fmt.Printf("Footer (en):   %s\n", s.FooterText.En)
	fmt.Printf("Footer (ar):   %s\n", s.FooterText.Ar)
	for i, id := range s.FeaturedResourceIDs {
		slot := "-"
		if id != nil {
			slot = *id
		}
		fmt.Printf("Featured %d:    %s\n", i+1, slot)
	}
	fmt.Printf("Version:       %d\n", s.Version)
}

func init() {
	settingsSetCmd.Flags().String("title-en", "", "English site title")
	settingsSetCmd.Flags().String("title-ar", "", "Arabic site title")
	settingsSetCmd.Flags().String("contact-email", "", "contact email")
	settingsSetCmd.Flags().String("footer-en", "", "English footer; {year} is replaced")
	settingsSetCmd.Flags().String("footer-ar", "", "Arabic footer; {year} is replaced")
	settingsSetCmd.Flags().StringSlice("featured", nil, "featured resource ids, in slot order (empty entries clear a slot)")
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd)
}
