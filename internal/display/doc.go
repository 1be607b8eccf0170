// Package display shows pixel buffers to the user.
//
// The display surface is a full-screen terminal program: the image is scaled
// to fit the terminal and drawn with upper-half-block cells, where each cell's
// foreground carries the upper pixel and its background the lower one. The
// surface stays open until any key is pressed and the terminal is restored
// when the program exits, whichever way it exits.
//
//	viewer := display.NewTerminalViewer()
//	if err := viewer.Show("Image", img); err != nil {
//	    return err
//	}
package display
