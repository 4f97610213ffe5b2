package commands

import (
	"context"
	"fmt"

	s3client "github.com/musheer090/kubescape-automator/internal/s3"
	"github.com/spf13/cobra"
)

var regionsFlags struct {
	awsProfile string
	awsRegion  string
}

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List enabled AWS regions",
	Long: `Lists the AWS regions enabled for the current account, as accepted by
the scan command's --region flag.`,
	RunE: runRegions,
}

func init() {
	regionsCmd.Flags().StringVar(&regionsFlags.awsProfile, "aws-profile", "", "AWS profile to use")
	regionsCmd.Flags().StringVar(&regionsFlags.awsRegion, "aws-region", "", "Region to query from (defaults to profile default)")
}

func runRegions(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	client, err := s3client.NewClient(ctx, regionsFlags.awsProfile, regionsFlags.awsRegion)
	if err != nil {
		return enhanceError("AWS client initialization", err)
	}

	regions, err := client.ListRegions(ctx)
	if err != nil {
		return enhanceError("region listing", err)
	}

	for _, region := range regions {
		if region == client.GetRegion() {
			fmt.Printf("%s (current)\n", region)
			continue
		}
		fmt.Println(region)
	}
	return nil
}
