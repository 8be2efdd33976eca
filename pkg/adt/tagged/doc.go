// Package tagged holds the behavior shared by two-variant values such as
// either.Either and result.Result. Each of those types is an independent
// struct; they meet here through the Shape interface.
package tagged
