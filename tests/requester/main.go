package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL   = "http://localhost:8080"
	maxUserID = 10
	maxOrder  = 500
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	var url string
	switch rand.Intn(3) {
	case 0:
		url = fmt.Sprintf("%s/orders/%d", baseURL, rand.Intn(maxOrder)+1)
	case 1:
		url = fmt.Sprintf("%s/users/%d", baseURL, rand.Intn(maxUserID)+1)
	default:
		url = fmt.Sprintf("%s/users/%d/orders", baseURL, rand.Intn(maxUserID)+1)
	}

	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("GET", url, "->", resp.Status)
		resp.Body.Close()
	}
}
