// Package visualizer renders the live state of a clustering run as a
// styled terminal summary, via github.com/charmbracelet/lipgloss.
//
// Clusterer is a tagged variant over the seven clustering families
// rather than an open interface: the set of algorithms is closed and
// known up front, every variant shares the same small capability set
// (init, step, current labels, current means or exemplars, render),
// and a switch over a Kind tag is more direct here than a method set
// satisfied by seven unrelated structs.
package visualizer
