// Package tasksdk provides a Go client for the TaskDesk HTTP API along with
// the request and response types shared with the server's handlers.
package tasksdk
