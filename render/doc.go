// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render formats the public view of a nomination.

FormatNomination produces the tally board: header, accusation and
defense, the deadline (humanized), the execution threshold, and one
line per voter in count order with a running tally and a pointer at
the seat currently being counted.

When the organ grinder is active every vote shows as the concealed
mark and the running tally is hidden; only the finished/unfinished
state remains visible.

The Renderer interface abstracts where the board goes. NewLog returns
a renderer that writes boards to the structured log, which is what the
server wires by default.
*/
package render
