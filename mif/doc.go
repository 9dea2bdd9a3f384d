// Package mif writes memory-initialization files: the text image format
// used to preload an FPGA memory block.
//
// An Image holds one Entry per memory word, starting at address zero.
// When written, words past the last entry are covered by a single
// compressed range entry holding the fill value, and entries past the
// memory depth are dropped.
package mif
