package main

import (
	"bytes"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/wansing/chronicle/api"
	"github.com/wansing/chronicle/core"
	"github.com/wansing/chronicle/sqldb"
	"github.com/wansing/chronicle/sqldb/mysql"
	"github.com/wansing/chronicle/sqldb/sqlite3"
	"github.com/wansing/chronicle/util"
	"github.com/xo/dburl"
	"golang.org/x/crypto/ssh/terminal"
)

func init() {
	log.SetFlags(0) // no log prefixes, on most systems systemd-journald adds them
}

func main() {

	// config file values are defaults, flags win

	var dbDefault = "sqlite3:chronicle.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared"
	var listenDefault = "127.0.0.1:8080"

	if cfg, err := util.Ini("chronicle.ini"); err == nil {
		if v, ok := cfg["db"]; ok {
			dbDefault = v
		}
		if v, ok := cfg["listen"]; ok {
			listenDefault = v
		}
	}

	var dbArg string // is in both FlagSets

	// default FlagSet

	flag.StringVar(&dbArg, "db", dbDefault, "sql database url, see github.com/xo/dburl")
	var listenAddr = flag.String("listen", listenDefault, "serve HTTP content at this `ip:port`")

	// init FlagSet

	var initFlags = flag.NewFlagSet("init", flag.ExitOnError)

	initFlags.StringVar(&dbArg, "db", dbDefault, "sql database url, see github.com/xo/dburl") // copied from above
	var initInsert = initFlags.Bool("insert", false, "creates the given user")
	var username = initFlags.String("user", "", "specifies a user `name`")

	if len(os.Args) > 1 && os.Args[1] == "init" {
		initFlags.Parse(os.Args[2:])
	} else {
		flag.Parse()
	}

	// database

	dbURL, err := dburl.Parse(dbArg)
	if err != nil {
		log.Printf("could not parse database url: %v", err)
		return
	}

	sqlDB, err := sql.Open(dbURL.Driver, dbURL.DSN)
	if err != nil {
		log.Printf("could not open sql database: %v", err)
		return
	}

	if err = sqlDB.Ping(); err != nil {
		log.Printf("could not ping sql database: %v", err)
		return
	}

	log.Printf("using database %s", dbURL.String())

	// assemble stuff

	var sessionStore scs.Store
	switch dbURL.Driver {
	case "mysql":
		sessionStore = mysql.NewSessionStore(sqlDB)
	case "sqlite3":
		sessionStore = sqlite3.NewSessionStore(sqlDB)
	default:
		log.Printf("unknown database backend: %s", dbURL.Driver)
		return
	}

	db := &core.CoreDB{}
	if err := db.Init(sessionStore, ""); err != nil {
		log.Println(err) // log.Fatalln would not run deferred functions
		return
	}

	db.ArticleDB = sqldb.NewArticleDB(sqlDB)
	db.UserDB = sqldb.NewUserDB(sqlDB)
	db.SqlDB = sqlDB

	defer func() {
		log.Println("closing database")
		sqlDB.Close()
	}()

	// init

	if initFlags.Parsed() {
		if *username == "" {
			log.Println("init requires -user")
			return
		}
		if *initInsert {
			insertUser(db, *username)
		}
		return
	}

	listen(db, *listenAddr)
}

func readPassword(username string) (string, bool) {

	fmt.Printf("password for user %s: ", username)
	pass1, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return "", false
	}

	fmt.Printf("repeat password: ")
	pass2, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		log.Printf("error reading password: %v", err)
		return "", false
	}

	if !bytes.Equal(pass1, pass2) {
		log.Printf("passwords don't match")
		return "", false
	}

	return string(pass1), true
}

func insertUser(db *core.CoreDB, name string) {

	pass, ok := readPassword(name)
	if !ok {
		return
	}

	user, err := db.InsertUser(name)
	if err != nil {
		log.Printf("error creating user %s: %v", name, err)
		return
	}

	if err := db.SetPassword(user, pass); err != nil {
		log.Printf("error setting password: %v", err)
		return
	}
}

func listen(db *core.CoreDB, addr string) {

	var waitingHandlers sync.WaitGroup

	var router = api.NewRouter(db)

	var handler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		waitingHandlers.Add(1)
		defer waitingHandlers.Done()
		router.ServeHTTP(w, req)
	})

	// listener and listen

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("listening to %s", addr)

	httpSrv := &http.Server{
		Handler:      db.SessionManager.LoadAndSave(handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil {

			// don't panic, we want a graceful shutdown
			if err != http.ErrServerClosed {
				log.Printf("error listening: %v", err)
			}

			// ensure graceful shutdown
			sigintChannel <- os.Interrupt
		}
	}()

	// graceful shutdown

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM) // SIGINT (Interrupt) or SIGTERM
	<-sigintChannel

	log.Println("shutting down")
	httpSrv.Close()

	waitingHandlers.Wait()
}
