// Package lineio moves lines between byte streams and a
// buffer.LineBuffer.
//
// The on-disk format is plain text: every line is written followed by a
// single '\n', the last one included. Reading accepts a final record
// without a trailing newline and never produces an extra empty line for
// a file that does end with one. Bytes are carried through unchanged;
// there is no escaping and no encoding step.
package lineio
