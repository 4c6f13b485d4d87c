// Storygen runs the Story Generator backend.
//
// Usage:
//
//	# Start the API server (reads .env if present)
//	storygen serve
//
//	# Validate the backend or client environment
//	storygen envcheck --target frontend --env-file .env.production
//
//	# Show version information
//	storygen version
package main

func main() {
	Execute()
}
