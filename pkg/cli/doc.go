/*
Package cli provides helpers shared by the crms subcommands: output
formatters and typed command errors.

Output Formatting:

Command results print as text by default and as JSON with --format json:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Errors:

Artifact defects carry the artifact path so the operator knows which file
to fix; subcommand failures wrap their cause:

	return cli.NewArtifactError(cfgFile, err.Error())
	return cli.NewCommandError("run", err)
*/
package cli
