// Package arraymod registers the shuffle and sample array methods. Building
// with the rand_noarray tag leaves the package empty.
package arraymod
