// cmd/tools/artifact-inspector/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"house-price-api/internal/artifacts"
	"house-price-api/internal/common/config"
	"house-price-api/internal/models"
)

func main() {
	modelPath := flag.String("model", "artifacts/model.json", "Path to the model document")
	scalerPath := flag.String("scaler", "artifacts/scaler.json", "Path to the scaler document")
	flag.Parse()

	model, err := artifacts.LoadModel(*modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scaler, err := artifacts.LoadScaler(*scalerPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Model:  version=%s features=%d intercept=%.4f\n",
		model.Version, len(model.FeatureOrder), model.Intercept)
	fmt.Printf("Scaler: version=%s feature=%s range=[%.2f, %.2f]\n",
		scaler.Version, scaler.Feature, scaler.Min, scaler.Max)

	for i, name := range model.FeatureOrder {
		fmt.Printf("  %2d  %-22s %14.4f\n", i, name, model.Coefficients[i])
	}

	// Full compatibility check, same one the server runs at startup.
	if _, err := artifacts.Load(config.ArtifactsConfig{
		ModelPath:  *modelPath,
		ScalerPath: *scalerPath,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Incompatible artifacts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: artifacts compatible with serving contract (%d features)\n",
		len(models.FeatureOrder))
}
