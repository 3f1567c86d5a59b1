package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/aweris/geoslice"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <outBase>",
	Short: "Convert a geospatial image to raw dataset form",
	Long: "Convert a GDAL-readable raster (e.g. GeoTIFF) into <outBase>.bin " +
		"(raw BSQ payload) and <outBase>.json (descriptor). Requires " +
		"gdal_translate and gdalinfo on PATH.",
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var convertOverwrite bool

func init() {
	convertCmd.Flags().BoolVar(&convertOverwrite, "overwrite", false, "overwrite existing output files")
	rootCmd.AddCommand(convertCmd)
}

// gdalInfo is the subset of `gdalinfo -json` output the converter needs.
type gdalInfo struct {
	Size         [2]int     `json:"size"` // width, height
	GeoTransform [6]float64 `json:"geoTransform"`
	Bands        []struct {
		Type string `json:"type"`
	} `json:"bands"`
	CoordinateSystem struct {
		WKT string `json:"wkt"`
	} `json:"coordinateSystem"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	input, outBase := args[0], args[1]
	binPath := outBase + ".bin"
	jsonPath := outBase + ".json"

	if !convertOverwrite {
		for _, p := range []string{binPath, jsonPath} {
			if _, err := os.Stat(p); err == nil {
				return fmt.Errorf("output %s already exists (use --overwrite)", p)
			}
		}
	}

	translate := exec.Command("gdal_translate", "-of", "ENVI", "-co", "INTERLEAVE=BSQ", input, binPath)
	translate.Stderr = os.Stderr
	if err := translate.Run(); err != nil {
		return fmt.Errorf("gdal_translate: %w", err)
	}

	out, err := exec.Command("gdalinfo", "-json", input).Output()
	if err != nil {
		return fmt.Errorf("gdalinfo: %w", err)
	}
	var info gdalInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return fmt.Errorf("parse gdalinfo output: %w", err)
	}
	if len(info.Bands) == 0 {
		return fmt.Errorf("%s has no raster bands", input)
	}

	gt := info.GeoTransform
	meta := geoslice.Metadata{
		DType:  gdalDType(info.Bands[0].Type),
		Count:  len(info.Bands),
		Height: info.Size[1],
		Width:  info.Size[0],
		// GDAL orders its geotransform (originX, scaleX, rotX, originY,
		// rotY, scaleY); the descriptor wants (scaleX, rotX, originX,
		// rotY, scaleY, originY).
		Transform: [6]float64{gt[1], gt[2], gt[0], gt[4], gt[5], gt[3]},
		CRS:       info.CoordinateSystem.WKT,
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write descriptor: %w", err)
	}

	// The ENVI driver leaves a sidecar header next to the payload.
	for _, hdr := range []string{binPath + ".hdr", outBase + ".hdr"} {
		if _, err := os.Stat(hdr); err == nil {
			os.Remove(hdr)
		}
	}

	fmt.Fprintf(os.Stderr, "Wrote %s and %s\n", binPath, jsonPath)
	return nil
}

// gdalDType maps a GDAL band type name to a descriptor dtype.
func gdalDType(t string) geoslice.DType {
	switch t {
	case "Byte":
		return geoslice.Uint8
	case "UInt16":
		return geoslice.Uint16
	case "Int16":
		return geoslice.Int16
	case "UInt32":
		return geoslice.Uint32
	case "Int32":
		return geoslice.Int32
	case "Float32":
		return geoslice.Float32
	case "Float64":
		return geoslice.Float64
	default:
		return geoslice.Uint8
	}
}
