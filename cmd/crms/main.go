// Crms is the deployment configuration engine for the Open Crime Records
// Management System.
//
// It loads a jurisdiction's deployment artifact, validates it exhaustively,
// and serves the derived services: national ID validation, the offense
// catalog, localization, and the external integration gateway.
//
// Usage:
//
//	# Start the engine with the default artifact path
//	crms run
//
//	# Start with a specific deployment artifact
//	crms run --config /etc/crms/nigeria.yaml
//
//	# Check an artifact without starting anything
//	crms validate --config nigeria.yaml
//
//	# Show version information
//	crms version
package main

func main() {
	Execute()
}
