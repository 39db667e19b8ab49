// Package interp implements Newton divided-difference interpolation:
// building the difference table from point data (including Hermite data with
// first derivatives), evaluating the Newton form, and re-expanding it as a
// Taylor polynomial about an arbitrary point.
package interp
