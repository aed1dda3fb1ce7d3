// Package linux provides Linux platform support: Yakuake over the D-Bus
// session bus and process inspection through procfs.
package linux
