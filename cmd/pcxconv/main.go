package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/pcxconv"
	"github.com/bodgit/pcxconv/palette"
	"github.com/urfave/cli/v2"
)

const (
	defaultDB      = "pcxconv.db"
	defaultPalette = "DMTD.PAL"
	defaultWorkers = 4
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func newConverter(c *cli.Context) *pcxconv.Converter {
	return pcxconv.New(newLogger(c), c.Int("workers"))
}

// Convert the current directory if no paths are given
func paths(c *cli.Context) []string {
	if c.NArg() == 0 {
		return []string{"."}
	}
	return c.Args().Slice()
}

func loadPalette(c *cli.Context) (*palette.Palette, error) {
	if c.Bool("builtin") {
		return palette.Default(), nil
	}

	if name := c.String("palette-name"); name != "" {
		db, err := pcxconv.NewPaletteDB(c.String("db"))
		if err != nil {
			return nil, err
		}
		defer db.Close()

		p, err := db.FindPalette(name)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, fmt.Errorf("no palette named \"%s\"", name)
		}
		return p, nil
	}

	return pcxconv.ReadPalette(c.String("palette"))
}

// Subcommand help is looked up from the parent command
func showSubcommandHelpAndExit(c *cli.Context) {
	parent := c
	if lineage := c.Lineage(); len(lineage) > 1 {
		parent = lineage[1]
	}
	cli.ShowCommandHelpAndExit(parent, c.Command.Name, 1)
}

func exitError(err error) error {
	if err == nil {
		return nil
	}
	return cli.NewExitError(err, 1)
}

func main() {
	app := cli.NewApp()

	app.Name = "pcxconv"
	app.Usage = "8-bit PCX image conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PCXCONV_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to palette database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:    "workers",
			EnvVars: []string{"PCXCONV_WORKERS"},
			Value:   defaultWorkers,
			Usage:   "number of files to convert in parallel",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "decode",
			Usage:       "Convert PCX images to RGBA images",
			Description: "Each PATH is a PCX file or a directory searched for .pcx files.",
			ArgsUsage:   "[PATH...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "out",
					Usage: "write converted files to `DIR`",
				},
				&cli.StringFlag{
					Name:  "format",
					Value: "png",
					Usage: "output format; png, bmp or tiff",
				},
			},
			Action: func(c *cli.Context) error {
				format := strings.ToLower(strings.TrimPrefix(c.String("format"), "."))
				switch format {
				case "png", "bmp", "tif", "tiff":
				default:
					return exitError(fmt.Errorf("unsupported output format \"%s\"", format))
				}

				return exitError(newConverter(c).DecodeAll(c.Context, paths(c), c.String("out"), "."+format))
			},
		},
		{
			Name:        "encode",
			Usage:       "Convert RGBA images to PCX images",
			Description: "Each PATH is an image file or a directory searched for PNG, BMP, TIFF, GIF and JPEG images.",
			ArgsUsage:   "[PATH...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "palette",
					EnvVars: []string{"PCXCONV_PALETTE"},
					Value:   defaultPalette,
					Usage:   "768 byte palette `FILE`",
				},
				&cli.StringFlag{
					Name:  "palette-name",
					Usage: "use the palette stored in the database as `NAME`",
				},
				&cli.BoolFlag{
					Name:  "builtin",
					Usage: "use the built-in palette",
				},
				&cli.BoolFlag{
					Name:  "scanlines",
					Usage: "never let a run cross a scanline",
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "write converted files to `DIR`",
				},
			},
			Action: func(c *cli.Context) error {
				p, err := loadPalette(c)
				if err != nil {
					return exitError(err)
				}

				return exitError(newConverter(c).EncodeAll(c.Context, paths(c), c.String("out"), p, c.Bool("scanlines")))
			},
		},
		{
			Name:  "palette",
			Usage: "Manage 256 color palettes",
			Subcommands: []*cli.Command{
				{
					Name:      "swatch",
					Usage:     "Render a palette file as an image",
					ArgsUsage: "PALETTE IMAGE",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:  "cols",
							Value: 16,
							Usage: "colors per row",
						},
						&cli.IntFlag{
							Name:  "scale",
							Value: 1,
							Usage: "size in pixels of each color",
						},
					},
					Action: func(c *cli.Context) error {
						if c.NArg() < 2 {
							showSubcommandHelpAndExit(c)
						}

						return exitError(newConverter(c).Swatch(c.Args().Get(0), c.Args().Get(1), c.Int("cols"), c.Int("scale")))
					},
				},
				{
					Name:      "generate",
					Usage:     "Write the built-in palette or one built from an image",
					ArgsUsage: "FILE",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "from",
							Usage: "build the palette from the colors in `IMAGE`",
						},
					},
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							showSubcommandHelpAndExit(c)
						}

						return exitError(newConverter(c).GeneratePalette(c.String("from"), c.Args().First()))
					},
				},
				{
					Name:      "import",
					Usage:     "Store a palette file in the database",
					ArgsUsage: "NAME FILE",
					Action: func(c *cli.Context) error {
						if c.NArg() < 2 {
							showSubcommandHelpAndExit(c)
						}

						db, err := pcxconv.NewPaletteDB(c.String("db"))
						if err != nil {
							return exitError(err)
						}
						defer db.Close()

						return exitError(db.ImportPalette(c.Args().Get(0), c.Args().Get(1)))
					},
				},
				{
					Name:  "list",
					Usage: "List the palettes in the database",
					Action: func(c *cli.Context) error {
						db, err := pcxconv.NewPaletteDB(c.String("db"))
						if err != nil {
							return exitError(err)
						}
						defer db.Close()

						names, err := db.Palettes()
						if err != nil {
							return exitError(err)
						}
						for _, name := range names {
							fmt.Println(name)
						}
						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
