// Package advanced provides operations beyond the basic four: potencia
// (exponentiation) and modulo (floating-point remainder).
//
// It is a separate package from arithmetic so a calculator that only wants
// the basic set never carries these; a catalog advertises exactly the
// operations registered in it and nothing more.
package advanced
