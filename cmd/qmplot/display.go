package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/gorilla/mux"
	"github.com/interpose/middleware"
	"github.com/justinas/alice"
	"github.com/liqingbioinfo/qmplot/manhattan"
	"github.com/liqingbioinfo/qmplot/qq"
	"github.com/wcharczuk/go-chart/v2"
)

// serveViewer publishes the plots over HTTP until the process is
// interrupted: an interactive page at /, raster fallbacks at
// /manhattan.png and /qq.png.
func serveViewer(plots *plotSet, port int) {
	errs := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Serving plots at http://localhost:%d - interrupt to stop\n", port)
		if err := http.ListenAndServe(fmt.Sprintf(":%d", port), router(plots)); err != nil {
			errs <- err
		}
	}()

	select {
	case s := <-sig:
		log.Printf("Exit: %s\n", s.String())
	case err := <-errs:
		log.Fatalln(err)
	}
}

func router(plots *plotSet) http.Handler {
	router := mux.NewRouter()
	GET := router.Methods("GET", "HEAD").Subrouter()

	h := handler{plots: plots}

	GET.HandleFunc("/", h.Index).Name("index")
	GET.HandleFunc("/manhattan.png", h.ManhattanPNG).Name("manhattan")
	GET.HandleFunc("/qq.png", h.QQPNG).Name("qq")

	standard := alice.New(
		// Log all requests to STDOUT
		middleware.GorillaLog(),
	)

	return standard.Then(router)
}

type handler struct {
	plots *plotSet
}

func (h handler) Index(w http.ResponseWriter, r *http.Request) {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		manhattan.HTMLChart(h.plots.layout, h.plots.signals, h.plots.manhattan),
		qq.HTMLChart(h.plots.expected, h.plots.observed, h.plots.lambda, h.plots.qq),
	)

	if err := page.Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h handler) ManhattanPNG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")

	graph := manhattan.Plot(h.plots.layout, h.plots.signals, h.plots.manhattan)
	if err := graph.Render(chart.PNG, w); err != nil {
		log.Println(err)
	}
}

func (h handler) QQPNG(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/png")

	graph := qq.Plot(h.plots.expected, h.plots.observed, h.plots.qq)
	if err := graph.Render(chart.PNG, w); err != nil {
		log.Println(err)
	}
}
