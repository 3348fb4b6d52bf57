package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scholarportal/internal/adminform"
	"scholarportal/internal/portalctl"
)

var collectionsCmd = &cobra.Command{
	Use:     "collections",
	Aliases: []string{"col"},
	Short:   "Manage collections",
}

var collectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		collections, err := client.ListCollections(cmd.Context())
		if err != nil {
			return err
		}
		if len(collections) == 0 {
			fmt.Println("No collections.")
			return nil
		}

		tw := newTable()
		fmt.Fprintln(tw, "ID\tNAME\tTYPE\tCATEGORY\tLANG")
		for _, c := range collections {
			category, lang := "", ""
			if c.Category != nil {
				category = string(*c.Category)
			}
			if c.Language != nil {
				lang = string(*c.Language)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.ContentType, orDash(category), orDash(lang))
		}
		return tw.Flush()
	},
}

var collectionsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		var form adminform.Form[adminform.CollectionDraft]
		form.OpenCreate(adminform.CollectionDraft{})
		if err := form.Update(func(d *adminform.CollectionDraft) { applyCollectionFlags(cmd, d) }); err != nil {
			return err
		}

		saved, err := adminform.SubmitCollection(cmd.Context(), &form, client)
		if err != nil {
			return reportFieldErrors(err, form.FieldErrors())
		}
		fmt.Printf("Created collection %s (%s)\n", saved.Name, saved.ID)
		return nil
	},
}

var collectionsEditCmd = &cobra.Command{
	Use:   "edit <id-or-name>",
	Short: "Edit a collection; only changed fields are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		collections, err := client.ListCollections(cmd.Context())
		if err != nil {
			return err
		}
		target, err := portalctl.ResolveCollection(collections, args[0])
		if err != nil {
			return err
		}

		var form adminform.Form[adminform.CollectionDraft]
		form.OpenEdit(target.ID, adminform.CollectionDraftFrom(target))
		if err := form.Update(func(d *adminform.CollectionDraft) { applyCollectionFlags(cmd, d) }); err != nil {
			return err
		}

		if coverFile, _ := cmd.Flags().GetString("cover-file"); coverFile != "" {
			if err := attachFile(cmd, &form, client, "collections", coverFile, func(d *adminform.CollectionDraft, url string) {
				d.CoverImageURL = url
			}); err != nil {
				return err
			}
		}

		saved, err := adminform.SubmitCollection(cmd.Context(), &form, client)
		if err != nil {
			return reportFieldErrors(err, form.FieldErrors())
		}
		fmt.Printf("Updated collection %s (%s)\n", saved.Name, saved.ID)
		return nil
	},
}

var collectionsDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a collection; its resources are kept and unlinked",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		collections, err := client.ListCollections(cmd.Context())
		if err != nil {
			return err
		}
		target, err := portalctl.ResolveCollection(collections, args[0])
		if err != nil {
			return err
		}
		if err := client.DeleteCollection(cmd.Context(), target.ID); err != nil {
			return err
		}
		fmt.Printf("Deleted collection %s (%s)\n", target.Name, target.ID)
		return nil
	},
}

// applyCollectionFlags copies only the flags the user set into d.
func applyCollectionFlags(cmd *cobra.Command, d *adminform.CollectionDraft) {
	set := func(name string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetString(name)
		}
	}
	set("name", &d.Name)
	set("description", &d.Description)
	set("cover", &d.CoverImageURL)
	set("language", &d.Language)
	set("category", &d.Category)
	set("content-type", &d.ContentType)
}

func addCollectionFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "collection name")
	cmd.Flags().String("description", "", "description (empty clears)")
	cmd.Flags().String("cover", "", "cover image URL (empty clears)")
	cmd.Flags().String("language", "", "ar or en (empty clears)")
	cmd.Flags().String("category", "", "subject category (empty clears)")
	cmd.Flags().String("content-type", "", "book, audio or video")
}

func init() {
	addCollectionFlags(collectionsCreateCmd)
	addCollectionFlags(collectionsEditCmd)
	collectionsEditCmd.Flags().String("cover-file", "", "upload a local image and use it as the cover")
	collectionsCmd.AddCommand(collectionsListCmd, collectionsCreateCmd, collectionsEditCmd, collectionsDeleteCmd)
}
