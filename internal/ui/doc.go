// Package ui contains the Bubble Tea program that powers the typeahead popup.
// The Model type focuses on message orchestration, while dedicated helpers own
// key handling, searching, backend sync, selection and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Edits to the query start a new search cycle on the complete.Session and
//     return a tea.Cmd that ranks candidates off the UI goroutine. The result
//     comes back as a searchResultMsg carrying the ticket it was issued for;
//     results for superseded tickets are dropped by the session.
//   - Navigation keys move the inspected match. Enter commits the inspected
//     match and hands the chosen candidate to the command bus.
//
// State ownership:
//   - The typeahead lifecycle (initial, pending, inspecting) lives entirely in
//     the complete.Session; the model only mirrors its query into the text
//     input and renders whatever state the session holds.
//   - Candidates are kept in a state.CandidateStore, refreshed by the
//     dispatcher from backend.Watcher events. Searches read a snapshot of the
//     store taken when the search is issued.
package ui
