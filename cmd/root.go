package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modfetch/modfetch/cmdshared"
	"github.com/modfetch/modfetch/core"
	"github.com/modfetch/modfetch/curseforge"
)

var (
	inFile    string
	outDir    string
	mcVersion string
	loader    string
	allowBeta bool
)

// rootCmd is the whole CLI surface; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "modfetch",
	Short: "Batch-download CurseForge mods into a staging folder",
	Long: `modfetch resolves a list of CurseForge project IDs to concrete mod files
matching a Minecraft version and loader, and downloads them into a staging
folder. The CURSEFORGE_API_KEY environment variable must hold a valid API key.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runFetch()
	},
}

// Execute starts the root command for modfetch
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&inFile, "in", "", "Path to manifest.json or a JSON list of project IDs")
	_ = rootCmd.MarkFlagRequired("in")
	rootCmd.Flags().StringVar(&outDir, "out", "", "Staging folder to write downloaded jars into")
	_ = rootCmd.MarkFlagRequired("out")
	rootCmd.Flags().StringVar(&mcVersion, "mc", "1.20.1", "Minecraft version to match (e.g. 1.20.1)")
	_ = viper.BindPFlag("mc", rootCmd.Flags().Lookup("mc"))
	rootCmd.Flags().StringVar(&loader, "loader", "Forge", "Loader tag to match (Forge, NeoForge, or empty to disable)")
	_ = viper.BindPFlag("loader", rootCmd.Flags().Lookup("loader"))
	rootCmd.Flags().BoolVar(&allowBeta, "allow-beta", false, "Fall back to beta releases when no full release matches")
	_ = viper.BindPFlag("allow-beta", rootCmd.Flags().Lookup("allow-beta"))

	_ = viper.BindEnv("api-key", "CURSEFORGE_API_KEY")
	viper.AutomaticEnv()
}

func runFetch() {
	if loader != "Forge" && loader != "NeoForge" && loader != "" {
		fmt.Printf("Invalid loader %q: must be Forge, NeoForge or empty\n", loader)
		os.Exit(1)
	}
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		fmt.Println("Missing CURSEFORGE_API_KEY environment variable")
		os.Exit(1)
	}

	projectIDs, err := core.LoadProjectIDs(inFile)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := core.PrepareStagingDir(outDir); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	client := curseforge.NewClient(apiKey)
	downloadClient := &http.Client{Timeout: cmdshared.DownloadTimeout}

	for _, projectID := range projectIDs {
		files, err := client.GetModFiles(projectID)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		chosen, ok := curseforge.PickLatestFile(files, mcVersion, loader, allowBeta)
		if !ok || chosen.DownloadURL == "" {
			fmt.Printf("[WARN] No matching file for project %d (mc=%s, loader=%s)\n", projectID, mcVersion, loader)
			if versions := curseforge.KnownGameVersions(files); len(versions) > 0 {
				fmt.Printf("       Published versions: %s\n", strings.Join(versions, ", "))
			}
			continue
		}

		fmt.Printf("Downloading %s\n", chosen.FileName)
		err = cmdshared.DownloadFile(downloadClient, chosen.DownloadURL, filepath.Join(outDir, chosen.FileName))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	}

	fmt.Println("Done.")
}
