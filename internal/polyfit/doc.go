// Package polyfit fits a polynomial in s2 = sin²(phi) to a sample set by
// linear least squares and evaluates the result.
//
// Coefficients are kept lowest power first, the order Horner evaluation
// walks backwards. Presentation code asks for HighestFirst.
package polyfit
