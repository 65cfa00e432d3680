// Package ui contains the Bubble Tea program that draws the message board.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and dialogs.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - While a dialog is open (identity change or clear-mine confirmation)
//     keys and mouse events go to that dialog; a left click outside its box
//     dismisses it. Otherwise the message is routed through a typed handler
//     registry so each tea.Msg is handled by a focused function.
//   - Focus cycles between the search box, the compose fields, and the
//     message list. Search editing lives in input.go, focus and list movement
//     in navigation.go.
//
// State ownership:
//   - The board itself (messages and identity) is owned by board.Controller;
//     the model never caches messages beyond the last rendered board.Feed.
//   - List cursor, viewport, and search text live in internal/ui/state.List.
//   - Compose fields and dialogs live in internal/ui/form.
//
// Actions:
//   - Store mutations run through internal/ui/command.Bus. The bus executes
//     the action inside Update and delivers a command.Result, whose handler
//     shows validation errors, clears the search after a mutation, and
//     re-renders the feed.
package ui
