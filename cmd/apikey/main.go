// Mints a store API key for manual provisioning.
package main

import (
	"fmt"

	"github.com/rohithkumar4855/smartposBillingSystem/internal/usecase/store"
)

func main() {
	fmt.Println(store.NewAPIKey())
}
