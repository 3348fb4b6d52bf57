package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"scholarportal/internal/adminclient"
	"scholarportal/internal/adminform"
	"scholarportal/internal/domain/models"
	"scholarportal/internal/listing"
	"scholarportal/internal/portalctl"
)

var resourcesCmd = &cobra.Command{
	Use:     "resources",
	Aliases: []string{"res"},
	Short:   "Manage resources",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resources, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		client, _, err := newClient()
		if err != nil {
			return err
		}
		resources, err := client.ListResources(cmd.Context())
		if err != nil {
			return err
		}

		var filter listing.ResourceFilter
		filter.Query, _ = flags.GetString("query")
		if v, _ := flags.GetString("category"); v != "" {
			filter.Category = models.Category(v)
		}
		if v, _ := flags.GetString("language"); v != "" {
			filter.Language = models.Language(v)
		}
		if v, _ := flags.GetString("type"); v != "" {
			filter.Type = models.ResourceType(v)
		}
		if v, _ := flags.GetString("collection"); v != "" {
			filter.CollectionID = v
			if v != listing.NoCollection {
				collections, err := client.ListCollections(cmd.Context())
				if err != nil {
					return err
				}
				target, err := portalctl.ResolveCollection(collections, v)
				if err != nil {
					return err
				}
				filter.CollectionID = target.ID
			}
		}
		matched := listing.FilterResources(resources, filter)
		if len(matched) == 0 {
			fmt.Println("No resources.")
			return nil
		}

		page, _ := flags.GetInt("page")
		perPage, _ := flags.GetInt("per-page")
		tw := newTable()

		if grouped, _ := flags.GetBool("group"); grouped {
			groups := listing.Paginate(listing.GroupByCollection(matched), page, perPage)
			for _, g := range groups.Items {
				name := g.CollectionName
				if g.CollectionID == nil {
					name = "(no collection)"
				}
				fmt.Fprintf(tw, "== %s\t\t\t\n", name)
				for _, r := range g.Items {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.Position, r.ID, r.Title, r.Type)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Printf("\ngroups page %d/%d (%d groups)\n", groups.Page, max(groups.TotalPages, 1), groups.Total)
			return nil
		}

		p := listing.Paginate(matched, page, perPage)
		fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tLANG\tCOLLECTION\tTAGS")
		for _, r := range p.Items {
			collection := ""
			if r.Collection != nil {
				collection = r.Collection.Name
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.Title, r.Type, r.Language, orDash(collection), orDash(strings.Join(r.Tags, ",")))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Printf("\npage %d/%d (%d resources)\n", p.Page, max(p.TotalPages, 1), p.Total)
		return nil
	},
}

var resourcesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		var form adminform.Form[adminform.ResourceDraft]
		form.OpenCreate(adminform.ResourceDraft{})
		if err := applyResourceFlags(cmd, &form, client); err != nil {
			return err
		}

		saved, err := adminform.SubmitResource(cmd.Context(), &form, client)
		if err != nil {
			return reportFieldErrors(err, form.FieldErrors())
		}
		fmt.Printf("Created resource %s (%s)\n", saved.Title, saved.ID)
		return nil
	},
}

var resourcesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a resource; only changed fields are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		current, err := client.GetResource(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var form adminform.Form[adminform.ResourceDraft]
		form.OpenEdit(current.ID, adminform.ResourceDraftFrom(current))
		if err := applyResourceFlags(cmd, &form, client); err != nil {
			return err
		}

		saved, err := adminform.SubmitResource(cmd.Context(), &form, client)
		if err != nil {
			return reportFieldErrors(err, form.FieldErrors())
		}
		fmt.Printf("Updated resource %s (%s)\n", saved.Title, saved.ID)
		return nil
	},
}

var resourcesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		if err := client.DeleteResource(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted resource %s\n", args[0])
		return nil
	},
}

// applyResourceFlags copies set flags into the draft, resolving --collection
// and uploading --file / --cover-file first.
func applyResourceFlags(cmd *cobra.Command, form *adminform.Form[adminform.ResourceDraft], client *adminclient.Client) error {
	flags := cmd.Flags()

	collectionID := ""
	if flags.Changed("collection") {
		query, _ := flags.GetString("collection")
		if strings.TrimSpace(query) != "" {
			collections, err := client.ListCollections(cmd.Context())
			if err != nil {
				return err
			}
			target, err := portalctl.ResolveCollection(collections, query)
			if err != nil {
				return err
			}
			collectionID = target.ID
		}
	}

	if err := form.Update(func(d *adminform.ResourceDraft) {
		set := func(name string, dst *string) {
			if flags.Changed(name) {
				*dst, _ = flags.GetString(name)
			}
		}
		set("title", &d.Title)
		set("description", &d.Description)
		set("type", &d.Type)
		set("language", &d.Language)
		set("category", &d.Category)
		set("tags", &d.Tags)
		set("url", &d.URL)
		set("cover", &d.CoverImageURL)
		if flags.Changed("collection") {
			d.CollectionID = collectionID
		}
	}); err != nil {
		return err
	}

	if path, _ := flags.GetString("file"); path != "" {
		if err := attachFile(cmd, form, client, "resources", path, func(d *adminform.ResourceDraft, url string) {
			d.URL = url
		}); err != nil {
			return err
		}
	}
	if path, _ := flags.GetString("cover-file"); path != "" {
		if err := attachFile(cmd, form, client, "covers", path, func(d *adminform.ResourceDraft, url string) {
			d.CoverImageURL = url
		}); err != nil {
			return err
		}
	}
	return nil
}

func addResourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "resource title")
	cmd.Flags().String("description", "", "description (empty clears)")
	cmd.Flags().String("type", "", "pdf, audio, video, article, image or other")
	cmd.Flags().String("language", "", "ar or en")
	cmd.Flags().String("category", "", "subject category")
	cmd.Flags().String("tags", "", "comma-separated tags (empty clears)")
	cmd.Flags().String("url", "", "content URL")
	cmd.Flags().String("cover", "", "cover image URL (empty clears)")
	cmd.Flags().String("collection", "", "collection id or name, fuzzy matched (empty unlinks)")
	cmd.Flags().String("file", "", "upload a local file and use it as the content URL")
	cmd.Flags().String("cover-file", "", "upload a local image and use it as the cover")
}

func init() {
	resourcesListCmd.Flags().StringP("query", "q", "", "free-text search over title, description, tags and collection")
	resourcesListCmd.Flags().String("category", "", "filter by category")
	resourcesListCmd.Flags().String("language", "", "filter by language")
	resourcesListCmd.Flags().String("type", "", "filter by resource type")
	resourcesListCmd.Flags().String("collection", "", "collection id or name, or \"none\" for unlinked resources")
	resourcesListCmd.Flags().Bool("group", false, "group by collection; pages count groups")
	resourcesListCmd.Flags().Int("page", 1, "page number")
	resourcesListCmd.Flags().Int("per-page", 0, "page size (default 20)")

	addResourceFlags(resourcesCreateCmd)
	addResourceFlags(resourcesEditCmd)
	resourcesCmd.AddCommand(resourcesListCmd, resourcesCreateCmd, resourcesEditCmd, resourcesDeleteCmd)
}
