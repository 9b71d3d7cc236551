// Command server runs the ChurchConnect HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/Joseph-Edoh/Church-connect/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
