// gui.go - simple GTK3 GUI for cbzview.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of cbzview, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.
//go:build gui
// +build gui

package main

import (
	"log"
	"net/url"
	"os"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
	cbzview "github.com/unkaktus/cbzview/lib"
	"rsc.io/qr"
)

const applicationTitle = "cbzview"

var win *gtk.Window

const (
	ActionButtonText   = "Open comic"
	ProgressButtonText = "Opening comic..."
)

func guiMain(paramsCh chan<- cbzview.Parameters, linkChan <-chan url.URL, errChan <-chan error) {
	gtk.Init(nil)

	var err error
	win, err = gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		log.Fatal("Unable to create window:", err)
	}
	win.SetTitle(applicationTitle)
	win.SetIconName("image-x-generic")
	win.Connect("destroy", func() {
		gtk.MainQuit()
	})
	win.SetBorderWidth(5)
	win.SetDefaultSize(1, 1)
	win.SetResizable(false)

	grid, err := gtk.GridNew()
	if err != nil {
		log.Fatal("Unable to create grid:", err)
	}
	grid.SetOrientation(gtk.ORIENTATION_VERTICAL)
	grid.SetRowSpacing(12)
	grid.SetColumnSpacing(12)

	// comic chooser
	fileChooserLabel, err := gtk.LabelNew("Comic archive")
	if err != nil {
		log.Fatal(err)
	}
	grid.Attach(fileChooserLabel, 0, 0, 1, 1)

	fchooserBtn, err := gtk.FileChooserButtonNew("Select a comic", gtk.FILE_CHOOSER_ACTION_OPEN)
	if err != nil {
		log.Fatal(err)
	}
	ffilter, err := gtk.FileFilterNew()
	if err != nil {
		log.Fatal(err)
	}
	ffilter.AddPattern("*.cbz")
	ffilter.AddPattern("*.zip")
	fchooserBtn.AddFilter(ffilter)
	fchooserBtn.SetHExpand(false)
	grid.Attach(fchooserBtn, 1, 0, 1, 1)

	// action button
	doBtn, err := gtk.ButtonNewWithLabel(ActionButtonText)
	if err != nil {
		log.Fatal("Unable to create button:", err)
	}

	fadeOut := func() {
		fchooserBtn.SetSensitive(false)
		doBtn.SetSensitive(false)
		doBtn.SetLabel(ProgressButtonText)
		grid.ShowAll()
	}

	fadeIn := func() {
		fchooserBtn.SetSensitive(true)
		doBtn.SetSensitive(true)
		doBtn.SetLabel(ActionButtonText)
		grid.ShowAll()
	}

	doBtn.Connect("clicked", func() {
		path := fchooserBtn.GetFilename()
		if path == "" {
			return
		}
		fadeOut()
		paramsCh <- cbzview.Parameters{
			Debug: debug,
			Path:  path,
		}
	})
	grid.Attach(doBtn, 0, 2, 2, 1)

	urlEntry, err := gtk.EntryNew()
	if err != nil {
		log.Fatal("Unable to create entry:", err)
	}
	urlEntry.SetHExpand(true)
	go func() {
		for {
			select {
			case link := <-linkChan:
				_, err = glib.IdleAdd(func() {
					linkString := link.String()
					urlEntry.SetText(linkString)
					doBtn.Destroy()
					grid.Attach(urlEntry, 0, 1, 2, 1)
					urlEntry.SelectRegion(0, len(linkString))

					qrcode, err := qr.Encode(linkString, qr.L)
					if err != nil {
						log.Fatal(err)
					}
					pbl, err := gdk.PixbufLoaderNewWithType("png")
					if err != nil {
						log.Fatalf("Failed to create a pixbuf: %v", err)
					}
					_, err = pbl.Write(qrcode.PNG())
					if err != nil {
						log.Fatalf("Failed to write to pixbuf: %v", err)
					}
					qrPixbuf, err := pbl.GetPixbuf()
					if err != nil {
						log.Fatalf("Failed to get pixbuf: %v", err)
					}
					qrCodeWidget, err := gtk.ImageNewFromPixbuf(qrPixbuf)
					if err != nil {
						log.Fatalf("Failed to create qrcode widget: %v", err)
					}
					grid.Attach(qrCodeWidget, 0, 2, 2, 1)
					if err := openBrowser(linkString); err != nil {
						log.Printf("Unable to open browser: %v", err)
					}
					grid.ShowAll()
				})
				if err != nil {
					log.Fatal(err)
				}
			case err := <-errChan:
				errDialog := gtk.MessageDialogNew(win, gtk.DIALOG_MODAL, gtk.MESSAGE_ERROR, gtk.BUTTONS_CLOSE, err.Error())
				_, err = glib.IdleAdd(func() {
					errDialog.Run()
					errDialog.Destroy()
					fadeIn()
				})
				if err != nil {
					log.Fatal(err)
				}
			}
		}
	}()

	win.Add(&grid.Container.Widget)
	win.ShowAll()

	gtk.Main()
	os.Exit(0)
}
