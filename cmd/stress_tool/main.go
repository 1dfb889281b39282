package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// 与 pkg/response 中的业务码保持一致
const (
	codeSuccess       = 0
	codeAlreadyExists = 20003
)

var httpClient *http.Client

func init() {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 2000
	t.MaxIdleConnsPerHost = 2000
	t.MaxConnsPerHost = 2000
	httpClient = &http.Client{
		Transport: t,
		Timeout:   10 * time.Second,
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type user struct {
	ID    uint
	Token string
}

func main() {
	path := flag.String("scenario", "", "scenario yaml file")
	flag.Parse()

	sc, err := LoadScenario(*path)
	if err != nil {
		log.Fatal(err)
	}

	users := registerUsers(sc)
	fmt.Printf("注册并登录 %d 个用户\n", len(users))

	followRace(sc, users)
	createPosts(sc, users)
	feedLatency(sc, users)
}

func call(method, url, token string, payload interface{}) (int, envelope, error) {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, envelope{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, envelope{}, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, envelope{}, err
	}
	return resp.StatusCode, env, nil
}

func registerUsers(sc Scenario) []user {
	prefix := fmt.Sprintf("stress%d", time.Now().Unix())
	users := make([]user, 0, sc.Users)
	for i := 0; i < sc.Users; i++ {
		name := fmt.Sprintf("%s_%d", prefix, i)
		creds := map[string]string{
			"username":  name,
			"password":  sc.Password,
			"full_name": name,
			"email":     name + "@stress.example.com",
		}

		if _, env, err := call(http.MethodPost, sc.BaseURL+"/api/auth/register", "", creds); err != nil || env.Code != codeSuccess {
			log.Fatalf("register %s failed: %v %s", name, err, env.Message)
		}

		_, env, err := call(http.MethodPost, sc.BaseURL+"/api/auth/login", "", creds)
		if err != nil || env.Code != codeSuccess {
			log.Fatalf("login %s failed: %v %s", name, err, env.Message)
		}
		var login struct {
			Token string `json:"token"`
			User  struct {
				ID uint `json:"id"`
			} `json:"user"`
		}
		if err := json.Unmarshal(env.Data, &login); err != nil {
			log.Fatalf("decode login for %s: %v", name, err)
		}
		users = append(users, user{ID: login.User.ID, Token: login.Token})
	}
	return users
}

// followRace 每个用户并发重复关注 users[0]，成功数应恰好为 1
func followRace(sc Scenario, users []user) {
	target := users[0]
	var ok, dup, failed int64
	var wg sync.WaitGroup

	start := time.Now()
	for _, u := range users[1:] {
		for i := 0; i < sc.DuplicateFollows; i++ {
			wg.Add(1)
			go func(u user) {
				defer wg.Done()
				url := fmt.Sprintf("%s/api/users/%d/follow", sc.BaseURL, target.ID)
				_, env, err := call(http.MethodPost, url, u.Token, nil)
				switch {
				case err != nil:
					atomic.AddInt64(&failed, 1)
				case env.Code == codeSuccess:
					atomic.AddInt64(&ok, 1)
				case env.Code == codeAlreadyExists:
					atomic.AddInt64(&dup, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
			}(u)
		}
	}
	wg.Wait()

	fmt.Println("--------------------------------------------------")
	fmt.Printf("重复关注压测，耗时: %v\n", time.Since(start))
	fmt.Printf("成功: %d (预期: %d)\n", ok, len(users)-1)
	fmt.Printf("已关注: %d\n", dup)
	fmt.Printf("其他失败: %d\n", failed)
	if ok != int64(len(users)-1) {
		fmt.Println("警告: 成功数与预期不符，唯一约束可能失效")
	}
}

func createPosts(sc Scenario, users []user) {
	for _, u := range users {
		for i := 0; i < sc.PostsPerUser; i++ {
			payload := map[string]interface{}{"content": fmt.Sprintf("stress post %d from %d", i, u.ID)}
			if _, env, err := call(http.MethodPost, sc.BaseURL+"/api/posts", u.Token, payload); err != nil || env.Code != codeSuccess {
				log.Printf("create post for %d failed: %v %s", u.ID, err, env.Message)
			}
		}
	}
}

// feedLatency 并发拉取动态流并统计延迟分布（微秒）
func feedLatency(sc Scenario, users []user) {
	histogram := hdrhistogram.New(1, int64(10*time.Second/time.Microsecond), 3)
	var mu sync.Mutex
	var failures int64
	var wg sync.WaitGroup
	deadline := time.Now().Add(sc.FeedDuration)

	for w := 0; w < sc.FeedConcurrency; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; time.Now().Before(deadline); i++ {
				u := users[i%len(users)]
				url := fmt.Sprintf("%s/api/posts/feed?page=1&limit=%d", sc.BaseURL, sc.FeedLimit)

				start := time.Now()
				status, env, err := call(http.MethodGet, url, u.Token, nil)
				elapsed := time.Since(start)
				if err != nil || status != http.StatusOK || env.Code != codeSuccess {
					atomic.AddInt64(&failures, 1)
					continue
				}

				mu.Lock()
				_ = histogram.RecordValue(elapsed.Microseconds())
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	fmt.Println("--------------------------------------------------")
	fmt.Printf("动态流压测: 并发 %d, 持续 %v\n", sc.FeedConcurrency, sc.FeedDuration)
	fmt.Printf("请求数: %d, 失败: %d, QPS: %.2f\n",
		histogram.TotalCount(), failures, float64(histogram.TotalCount())/sc.FeedDuration.Seconds())
	for _, q := range []float64{50, 95, 99} {
		fmt.Printf("P%.0f: %v\n", q, time.Duration(histogram.ValueAtQuantile(q))*time.Microsecond)
	}
	fmt.Printf("Max: %v\n", time.Duration(histogram.Max())*time.Microsecond)
	fmt.Println("--------------------------------------------------")
}
