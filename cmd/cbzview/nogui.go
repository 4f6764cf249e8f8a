// nogui.go - empty GUI wrapper.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of cbzview, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
//go:build !gui
// +build !gui

package main

import (
	"log"
	"net/url"

	cbzview "github.com/unkaktus/cbzview/lib"
)

func guiMain(chan<- cbzview.Parameters, <-chan url.URL, <-chan error) {
	log.Fatal("Please specify path to a cbz file")
}
